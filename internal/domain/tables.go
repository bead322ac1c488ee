package domain

// Entity is implemented by every record managed by a back-office screen
type Entity interface {
	Key() string
}

var (
	_ Entity = Category{}
	_ Entity = Advantage{}
	_ Entity = Product{}
	_ Entity = Solution{}
	_ Entity = Price{}
	_ Entity = ServicePack{}
	_ Entity = BonusService{}
	_ Entity = Partner{}
	_ Entity = Trademark{}
	_ Entity = Office{}
	_ Entity = Page{}
	_ Entity = Post{}
	_ Entity = User{}
	_ Entity = QaA{}
)
