package events

// Status is the lifecycle state of an event as assigned by the remote service
type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusActive    Status = "ACTIVE"
	StatusComplete  Status = "COMPLETE"
	StatusCancelled Status = "CANCELLED"
	StatusDeleted   Status = "DELETED"
)

var Statuses = []Status{StatusDraft, StatusActive, StatusComplete, StatusCancelled, StatusDeleted}

// Lifecycle documents the transitions the remote service performs. It is
// informational only, nothing in this module enforces it.
var Lifecycle = map[Status][]Status{
	StatusDraft:     {StatusActive, StatusDeleted},
	StatusActive:    {StatusCancelled, StatusComplete},
	StatusCancelled: {StatusDeleted},
	StatusComplete:  {},
	StatusDeleted:   {},
}

type CurrencyType string

const (
	CurrencyUSD CurrencyType = "USD"
	CurrencyCAD CurrencyType = "CAD"
	CurrencyAUD CurrencyType = "AUD"
	CurrencyCHF CurrencyType = "CHF"
	CurrencyCZK CurrencyType = "CZK"
	CurrencyDKK CurrencyType = "DKK"
	CurrencyEUR CurrencyType = "EUR"
	CurrencyGBP CurrencyType = "GBP"
	CurrencyHKD CurrencyType = "HKD"
	CurrencyHUF CurrencyType = "HUF"
	CurrencyILS CurrencyType = "ILS"
	CurrencyJPY CurrencyType = "JPY"
	CurrencyMXN CurrencyType = "MXN"
	CurrencyNOK CurrencyType = "NOK"
	CurrencyNZD CurrencyType = "NZD"
	CurrencyPHP CurrencyType = "PHP"
	CurrencyPLN CurrencyType = "PLN"
	CurrencySEK CurrencyType = "SEK"
	CurrencySGD CurrencyType = "SGD"
	CurrencyTHB CurrencyType = "THB"
	CurrencyTWD CurrencyType = "TWD"
)

var CurrencyTypes = []CurrencyType{
	CurrencyUSD, CurrencyCAD, CurrencyAUD, CurrencyCHF, CurrencyCZK, CurrencyDKK, CurrencyEUR,
	CurrencyGBP, CurrencyHKD, CurrencyHUF, CurrencyILS, CurrencyJPY, CurrencyMXN, CurrencyNOK,
	CurrencyNZD, CurrencyPHP, CurrencyPLN, CurrencySEK, CurrencySGD, CurrencyTHB, CurrencyTWD,
}

type EventType string

const (
	TypeAuction                    EventType = "AUCTION"
	TypeBirthday                   EventType = "BIRTHDAY"
	TypeBusinessFinanceSales       EventType = "BUSINESS_FINANCE_SALES"
	TypeClassesWorkshops           EventType = "CLASSES_WORKSHOPS"
	TypeCompetitionSports          EventType = "COMPETITION_SPORTS"
	TypeConferencesSeminarsForum   EventType = "CONFERENCES_SEMINARS_FORUM"
	TypeConventionsTradeshowsExpos EventType = "CONVENTIONS_TRADESHOWS_EXPOS"
	TypeFestivalsFairs             EventType = "FESTIVALS_FAIRS"
	TypeFoodWine                   EventType = "FOOD_WINE"
	TypeFundraisersCharities       EventType = "FUNDRAISERS_CHARITIES"
	TypeHoliday                    EventType = "HOLIDAY"
	TypeIncentiveRewardRecognition EventType = "INCENTIVE_REWARD_RECOGNITION"
	TypeMoviesFilm                 EventType = "MOVIES_FILM"
	TypeMusicConcerts              EventType = "MUSIC_CONCERTS"
	TypeNetworkingClubs            EventType = "NETWORKING_CLUBS"
	TypePerformingArts             EventType = "PERFORMING_ARTS"
	TypeOutdoorsRecreation         EventType = "OUTDOORS_RECREATION"
	TypeReligionSpirituality       EventType = "RELIGION_SPIRITUALITY"
	TypeSchoolsReunionsAlumni      EventType = "SCHOOLS_REUNIONS_ALUMNI"
	TypePartiesSocialEventsMixers  EventType = "PARTIES_SOCIAL_EVENTS_MIXERS"
	TypeTravel                     EventType = "TRAVEL"
	TypeWebinarTeleseminar         EventType = "WEBINAR_TELESEMINAR_TELECLASS"
	TypeWeddings                   EventType = "WEDDINGS"
	TypeOther                      EventType = "OTHER"
)

var EventTypes = []EventType{
	TypeAuction, TypeBirthday, TypeBusinessFinanceSales, TypeClassesWorkshops,
	TypeCompetitionSports, TypeConferencesSeminarsForum, TypeConventionsTradeshowsExpos,
	TypeFestivalsFairs, TypeFoodWine, TypeFundraisersCharities, TypeHoliday,
	TypeIncentiveRewardRecognition, TypeMoviesFilm, TypeMusicConcerts, TypeNetworkingClubs,
	TypePerformingArts, TypeOutdoorsRecreation, TypeReligionSpirituality,
	TypeSchoolsReunionsAlumni, TypePartiesSocialEventsMixers, TypeTravel,
	TypeWebinarTeleseminar, TypeWeddings, TypeOther,
}

type NotificationType string

// NotificationPerRegistration sends a notice for each registration
const NotificationPerRegistration NotificationType = "SO_REGISTRATION_NOTIFICATION"

type PaymentType string

const (
	PaymentPayPal PaymentType = "PAYPAL"
	// PaymentGoogleCheckout is only valid on events created before October 2013
	PaymentGoogleCheckout PaymentType = "GOOGLE_CHECKOUT"
	PaymentCheck          PaymentType = "CHECK"
	PaymentDoor           PaymentType = "DOOR"
)

var PaymentTypes = []PaymentType{PaymentPayPal, PaymentGoogleCheckout, PaymentCheck, PaymentDoor}

type InformationSection string

const (
	SectionContact  InformationSection = "CONTACT"
	SectionTime     InformationSection = "TIME"
	SectionLocation InformationSection = "LOCATION"
)

var InformationSections = []InformationSection{SectionContact, SectionTime, SectionLocation}

func names[E ~string](values []E) []string {
	s := make([]string, 0, len(values))
	for _, v := range values {
		s = append(s, string(v))
	}
	return s
}

// LifecycleOf returns the statuses the remote service may move an event to
// from s. Unknown statuses have no documented successors.
func LifecycleOf(s Status) []Status {
	return append([]Status{}, Lifecycle[s]...)
}
