package domain

// Price billing periods
const (
	PeriodOnce  = "once"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// Price is one tariff line referenced by service packs
type Price struct {
	ID       string  `json:"id" csv:"id"`
	Title    string  `json:"title" csv:"title" validate:"required,min=1,max=200"`
	Amount   float64 `json:"amount" csv:"amount" validate:"gte=0"`
	Currency string  `json:"currency" csv:"currency" validate:"required,len=3,uppercase"`
	Period   string  `json:"period" csv:"period" validate:"required,oneof=once month year"`
}

func (p Price) Key() string { return p.ID }

// ServicePack is a tariff plan made of prices and optional bonus services
type ServicePack struct {
	ID            string `json:"id" csv:"id"`
	Title         string `json:"title" csv:"title" validate:"required,min=1,max=200"`
	Description   string `json:"description" csv:"description" validate:"omitempty,max=5000"`
	Prices        IDs    `json:"prices" csv:"prices" validate:"min=1,dive,required"`
	BonusServices IDs    `json:"bonus_services" csv:"bonus_services" validate:"dive,required"`
}

func (s ServicePack) Key() string { return s.ID }

// BonusService is an add-on sold in a quantity range, e.g. extra IPs or GB
type BonusService struct {
	ID    string  `json:"id" csv:"id"`
	Title string  `json:"title" csv:"title" validate:"required,min=1,max=200"`
	Unit  string  `json:"unit" csv:"unit" validate:"required,max=32"`
	Min   int     `json:"min" csv:"min" validate:"gte=0"`
	Max   int     `json:"max" csv:"max" validate:"gtefield=Min"`
	Price float64 `json:"price" csv:"price" validate:"gte=0"`
}

func (b BonusService) Key() string { return b.ID }

func DefaultPrice() Price {
	return Price{Currency: "RUB", Period: PeriodMonth}
}

func DefaultServicePack() ServicePack {
	return ServicePack{Prices: IDs{}, BonusServices: IDs{}}
}

func DefaultBonusService() BonusService {
	return BonusService{Unit: "pcs", Min: 0, Max: 1}
}
