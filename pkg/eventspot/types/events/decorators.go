package events

import (
	"fmt"
	"slices"

	"github.com/diwise/eventspot/pkg/eventspot/types"
	"github.com/diwise/eventspot/pkg/eventspot/types/addresses"
	"github.com/diwise/eventspot/pkg/eventspot/types/contacts"
	"github.com/diwise/eventspot/pkg/eventspot/types/optional"
)

type DecoratorFunc func(e *Event)

// New creates an event that has not been submitted yet. It has no id unless
// a decorator sets one.
func New(decorators ...DecoratorFunc) Event {
	return Event{}.With(decorators...)
}

// With returns a copy of the event with the decorators applied. The receiver
// is left unchanged.
func (e Event) With(decorators ...DecoratorFunc) Event {
	c := e.clone()

	for _, decorator := range decorators {
		decorator(&c)
	}

	return c
}

func (e Event) clone() Event {
	e.paymentOptions = optional.Map(e.paymentOptions, PaymentOptions.clone)
	e.trackInformation = optional.Map(e.trackInformation, TrackInformation.clone)
	return e
}

func ID(id string) DecoratorFunc {
	return func(e *Event) { e.id = optional.Some(id) }
}

func ActiveDate(dt types.DateTime) DecoratorFunc {
	return func(e *Event) { e.activeDate = optional.Some(dt) }
}

func WithAddress(a addresses.Address) DecoratorFunc {
	return func(e *Event) { e.address = optional.Some(a) }
}

func AreRegistrantsPublic(b bool) DecoratorFunc {
	return func(e *Event) { e.areRegistrantsPublic = optional.Some(b) }
}

func CancelledDate(dt types.DateTime) DecoratorFunc {
	return func(e *Event) { e.cancelledDate = optional.Some(dt) }
}

func WithContact(c contacts.Contact) DecoratorFunc {
	return func(e *Event) { e.contact = optional.Some(c) }
}

func CreatedDate(dt types.DateTime) DecoratorFunc {
	return func(e *Event) { e.createdDate = optional.Some(dt) }
}

func Currency(ct CurrencyType) DecoratorFunc {
	return func(e *Event) { e.currencyType = optional.Some(ct) }
}

func DeletedDate(dt types.DateTime) DecoratorFunc {
	return func(e *Event) { e.deletedDate = optional.Some(dt) }
}

func Description(text string) DecoratorFunc {
	return func(e *Event) { e.description = optional.Some(text) }
}

func EndDate(dt types.DateTime) DecoratorFunc {
	return func(e *Event) { e.endDate = optional.Some(dt) }
}

func EventDetailURL(url string) DecoratorFunc {
	return func(e *Event) { e.eventDetailURL = optional.Some(url) }
}

func GoogleAnalyticsKey(key string) DecoratorFunc {
	return func(e *Event) { e.googleAnalyticsKey = optional.Some(key) }
}

func GoogleMerchantID(id string) DecoratorFunc {
	return func(e *Event) { e.googleMerchantID = optional.Some(id) }
}

func CalendarDisplayed(b bool) DecoratorFunc {
	return func(e *Event) { e.isCalendarDisplayed = optional.Some(b) }
}

func CheckinAvailable(b bool) DecoratorFunc {
	return func(e *Event) { e.isCheckinAvailable = optional.Some(b) }
}

func HomePageDisplayed(b bool) DecoratorFunc {
	return func(e *Event) { e.isHomePageDisplayed = optional.Some(b) }
}

func ListedInExternalDirectory(b bool) DecoratorFunc {
	return func(e *Event) { e.isListedInExternalDirectory = optional.Some(b) }
}

func MapDisplayed(b bool) DecoratorFunc {
	return func(e *Event) { e.isMapDisplayed = optional.Some(b) }
}

func VirtualEvent(b bool) DecoratorFunc {
	return func(e *Event) { e.isVirtualEvent = optional.Some(b) }
}

func Location(venue string) DecoratorFunc {
	return func(e *Event) { e.location = optional.Some(venue) }
}

func MetaDataTags(tags string) DecoratorFunc {
	return func(e *Event) { e.metaDataTags = optional.Some(tags) }
}

func Name(name string) DecoratorFunc {
	return func(e *Event) { e.name = optional.Some(name) }
}

func WithNotificationOptions(n NotificationOptions) DecoratorFunc {
	return func(e *Event) { e.notificationOptions = optional.Some(n) }
}

func WithOnlineMeeting(m OnlineMeeting) DecoratorFunc {
	return func(e *Event) { e.onlineMeeting = optional.Some(m) }
}

func PayableTo(name string) DecoratorFunc {
	return func(e *Event) { e.payableTo = optional.Some(name) }
}

func WithPaymentAddress(a addresses.Address) DecoratorFunc {
	return func(e *Event) { e.paymentAddress = optional.Some(a) }
}

func WithPaymentOptions(po PaymentOptions) DecoratorFunc {
	return func(e *Event) { e.paymentOptions = optional.Some(po.clone()) }
}

// AcceptedPayments is a shorthand for WithPaymentOptions
func AcceptedPayments(pt ...PaymentType) DecoratorFunc {
	return WithPaymentOptions(PaymentOptions{PaymentTypes: optional.Some(slices.Clone(pt))})
}

func PaypalAccountEmail(email string) DecoratorFunc {
	return func(e *Event) { e.paypalAccountEmail = optional.Some(email) }
}

func RegistrationURL(url string) DecoratorFunc {
	return func(e *Event) { e.registrationURL = optional.Some(url) }
}

func StartDate(dt types.DateTime) DecoratorFunc {
	return func(e *Event) { e.startDate = optional.Some(dt) }
}

func WithStatus(s Status) DecoratorFunc {
	return func(e *Event) { e.status = optional.Some(s) }
}

func ThemeName(theme string) DecoratorFunc {
	return func(e *Event) { e.themeName = optional.Some(theme) }
}

func TimeZoneDescription(text string) DecoratorFunc {
	return func(e *Event) { e.timeZoneDescription = optional.Some(text) }
}

func TimeZoneID(id string) DecoratorFunc {
	return func(e *Event) { e.timeZoneID = optional.Some(id) }
}

func Title(title string) DecoratorFunc {
	return func(e *Event) { e.title = optional.Some(title) }
}

func TotalRegisteredCount(count int64) DecoratorFunc {
	return func(e *Event) { e.totalRegisteredCount = optional.Some(count) }
}

func WithTrackInformation(t TrackInformation) DecoratorFunc {
	return func(e *Event) { e.trackInformation = optional.Some(t.clone()) }
}

func TwitterHashTag(tag string) DecoratorFunc {
	return func(e *Event) { e.twitterHashTag = optional.Some(tag) }
}

func WithType(t EventType) DecoratorFunc {
	return func(e *Event) { e.eventType = optional.Some(t) }
}

func UpdatedDate(dt types.DateTime) DecoratorFunc {
	return func(e *Event) { e.updatedDate = optional.Some(dt) }
}

var unsetters = map[string]func(e *Event){
	"id":                              func(e *Event) { e.id = optional.None[string]() },
	"active_date":                     func(e *Event) { e.activeDate = optional.None[types.DateTime]() },
	"address":                         func(e *Event) { e.address = optional.None[addresses.Address]() },
	"are_registrants_public":          func(e *Event) { e.areRegistrantsPublic = optional.None[bool]() },
	"cancelled_date":                  func(e *Event) { e.cancelledDate = optional.None[types.DateTime]() },
	"contact":                         func(e *Event) { e.contact = optional.None[contacts.Contact]() },
	"created_date":                    func(e *Event) { e.createdDate = optional.None[types.DateTime]() },
	"currency_type":                   func(e *Event) { e.currencyType = optional.None[CurrencyType]() },
	"deleted_date":                    func(e *Event) { e.deletedDate = optional.None[types.DateTime]() },
	"description":                     func(e *Event) { e.description = optional.None[string]() },
	"end_date":                        func(e *Event) { e.endDate = optional.None[types.DateTime]() },
	"event_detail_url":                func(e *Event) { e.eventDetailURL = optional.None[string]() },
	"google_analytics_key":            func(e *Event) { e.googleAnalyticsKey = optional.None[string]() },
	"google_merchant_id":              func(e *Event) { e.googleMerchantID = optional.None[string]() },
	"is_calendar_displayed":           func(e *Event) { e.isCalendarDisplayed = optional.None[bool]() },
	"is_checkin_available":            func(e *Event) { e.isCheckinAvailable = optional.None[bool]() },
	"is_home_page_displayed":          func(e *Event) { e.isHomePageDisplayed = optional.None[bool]() },
	"is_listed_in_external_directory": func(e *Event) { e.isListedInExternalDirectory = optional.None[bool]() },
	"is_map_displayed":                func(e *Event) { e.isMapDisplayed = optional.None[bool]() },
	"is_virtual_event":                func(e *Event) { e.isVirtualEvent = optional.None[bool]() },
	"location":                        func(e *Event) { e.location = optional.None[string]() },
	"meta_data_tags":                  func(e *Event) { e.metaDataTags = optional.None[string]() },
	"name":                            func(e *Event) { e.name = optional.None[string]() },
	"notification_options":            func(e *Event) { e.notificationOptions = optional.None[NotificationOptions]() },
	"online_meeting":                  func(e *Event) { e.onlineMeeting = optional.None[OnlineMeeting]() },
	"payable_to":                      func(e *Event) { e.payableTo = optional.None[string]() },
	"payment_address":                 func(e *Event) { e.paymentAddress = optional.None[addresses.Address]() },
	"payment_options":                 func(e *Event) { e.paymentOptions = optional.None[PaymentOptions]() },
	"paypal_account_email":            func(e *Event) { e.paypalAccountEmail = optional.None[string]() },
	"registration_url":                func(e *Event) { e.registrationURL = optional.None[string]() },
	"start_date":                      func(e *Event) { e.startDate = optional.None[types.DateTime]() },
	"status":                          func(e *Event) { e.status = optional.None[Status]() },
	"theme_name":                      func(e *Event) { e.themeName = optional.None[string]() },
	"time_zone_description":           func(e *Event) { e.timeZoneDescription = optional.None[string]() },
	"time_zone_id":                    func(e *Event) { e.timeZoneID = optional.None[string]() },
	"title":                           func(e *Event) { e.title = optional.None[string]() },
	"total_registered_count":          func(e *Event) { e.totalRegisteredCount = optional.None[int64]() },
	"track_information":               func(e *Event) { e.trackInformation = optional.None[TrackInformation]() },
	"twitter_hash_tag":                func(e *Event) { e.twitterHashTag = optional.None[string]() },
	"type":                            func(e *Event) { e.eventType = optional.None[EventType]() },
	"updated_date":                    func(e *Event) { e.updatedDate = optional.None[types.DateTime]() },
}

// Unset returns the named wire fields to the absent state. It panics on a
// name that is not in the event catalog, as that is a programming error.
func Unset(fields ...string) DecoratorFunc {
	for _, f := range fields {
		if _, ok := unsetters[f]; !ok {
			panic(fmt.Sprintf("unknown event field %q", f))
		}
	}

	return func(e *Event) {
		for _, f := range fields {
			unsetters[f](e)
		}
	}
}
