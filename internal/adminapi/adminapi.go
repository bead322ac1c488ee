// Package adminapi exposes the back-office screens as JSON endpoints under /api/v1
package adminapi

// Init registers every admin API route on the global web server
func Init() {
	registerResourceRoutes()
	registerProductRoutes()
	registerServiceRoutes()
	registerPartnersRoutes()
	registerVendorRoutes()
	registerContentRoutes()
	registerUserRoutes()
	registerUploadRoutes()
	registerNotificationRoutes()
	registerSchedulerRoutes()
}
