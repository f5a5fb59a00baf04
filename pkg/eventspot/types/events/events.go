package events

import (
	"encoding/json"
	"fmt"

	"github.com/diwise/eventspot/pkg/eventspot/mapper"
	"github.com/diwise/eventspot/pkg/eventspot/types"
	"github.com/diwise/eventspot/pkg/eventspot/types/addresses"
	"github.com/diwise/eventspot/pkg/eventspot/types/contacts"
	"github.com/diwise/eventspot/pkg/eventspot/types/optional"
)

// Event is a single event record. Every field may be absent: a record built
// for submission has no id, and a record returned by a partial query only
// carries the fields that were asked for. Events are values, use New or
// With to derive a changed copy.
type Event struct {
	id                          optional.Value[string]
	activeDate                  optional.Value[types.DateTime]
	address                     optional.Value[addresses.Address]
	areRegistrantsPublic        optional.Value[bool]
	cancelledDate               optional.Value[types.DateTime]
	contact                     optional.Value[contacts.Contact]
	createdDate                 optional.Value[types.DateTime]
	currencyType                optional.Value[CurrencyType]
	deletedDate                 optional.Value[types.DateTime]
	description                 optional.Value[string]
	endDate                     optional.Value[types.DateTime]
	eventDetailURL              optional.Value[string]
	googleAnalyticsKey          optional.Value[string]
	googleMerchantID            optional.Value[string]
	isCalendarDisplayed         optional.Value[bool]
	isCheckinAvailable          optional.Value[bool]
	isHomePageDisplayed         optional.Value[bool]
	isListedInExternalDirectory optional.Value[bool]
	isMapDisplayed              optional.Value[bool]
	isVirtualEvent              optional.Value[bool]
	location                    optional.Value[string]
	metaDataTags                optional.Value[string]
	name                        optional.Value[string]
	notificationOptions         optional.Value[NotificationOptions]
	onlineMeeting               optional.Value[OnlineMeeting]
	payableTo                   optional.Value[string]
	paymentAddress              optional.Value[addresses.Address]
	paymentOptions              optional.Value[PaymentOptions]
	paypalAccountEmail          optional.Value[string]
	registrationURL             optional.Value[string]
	startDate                   optional.Value[types.DateTime]
	status                      optional.Value[Status]
	themeName                   optional.Value[string]
	timeZoneDescription         optional.Value[string]
	timeZoneID                  optional.Value[string]
	title                       optional.Value[string]
	totalRegisteredCount        optional.Value[int64]
	trackInformation            optional.Value[TrackInformation]
	twitterHashTag              optional.Value[string]
	eventType                   optional.Value[EventType]
	updatedDate                 optional.Value[types.DateTime]
}

func (e Event) ID() optional.Value[string] { return e.id }
func (e Event) ActiveDate() optional.Value[types.DateTime] { return e.activeDate }
func (e Event) Address() optional.Value[addresses.Address] { return e.address }
func (e Event) AreRegistrantsPublic() optional.Value[bool] { return e.areRegistrantsPublic }
func (e Event) CancelledDate() optional.Value[types.DateTime] { return e.cancelledDate }
func (e Event) Contact() optional.Value[contacts.Contact] { return e.contact }
func (e Event) CreatedDate() optional.Value[types.DateTime] { return e.createdDate }
func (e Event) CurrencyType() optional.Value[CurrencyType] { return e.currencyType }
func (e Event) DeletedDate() optional.Value[types.DateTime] { return e.deletedDate }
func (e Event) Description() optional.Value[string] { return e.description }
func (e Event) EndDate() optional.Value[types.DateTime] { return e.endDate }
func (e Event) EventDetailURL() optional.Value[string] { return e.eventDetailURL }
func (e Event) GoogleAnalyticsKey() optional.Value[string] { return e.googleAnalyticsKey }
func (e Event) GoogleMerchantID() optional.Value[string] { return e.googleMerchantID }
func (e Event) IsCalendarDisplayed() optional.Value[bool] { return e.isCalendarDisplayed }
func (e Event) IsCheckinAvailable() optional.Value[bool] { return e.isCheckinAvailable }
func (e Event) IsHomePageDisplayed() optional.Value[bool] { return e.isHomePageDisplayed }
func (e Event) IsMapDisplayed() optional.Value[bool] { return e.isMapDisplayed }
func (e Event) IsVirtualEvent() optional.Value[bool] { return e.isVirtualEvent }
func (e Event) Location() optional.Value[string] { return e.location }
func (e Event) MetaDataTags() optional.Value[string] { return e.metaDataTags }
func (e Event) Name() optional.Value[string] { return e.name }
func (e Event) OnlineMeeting() optional.Value[OnlineMeeting] { return e.onlineMeeting }
func (e Event) PayableTo() optional.Value[string] { return e.payableTo }
func (e Event) PaymentAddress() optional.Value[addresses.Address] { return e.paymentAddress }
func (e Event) PaypalAccountEmail() optional.Value[string] { return e.paypalAccountEmail }
func (e Event) RegistrationURL() optional.Value[string] { return e.registrationURL }
func (e Event) StartDate() optional.Value[types.DateTime] { return e.startDate }
func (e Event) Status() optional.Value[Status] { return e.status }
func (e Event) ThemeName() optional.Value[string] { return e.themeName }
func (e Event) TimeZoneDescription() optional.Value[string] { return e.timeZoneDescription }
func (e Event) TimeZoneID() optional.Value[string] { return e.timeZoneID }
func (e Event) Title() optional.Value[string] { return e.title }
func (e Event) TotalRegisteredCount() optional.Value[int64] { return e.totalRegisteredCount }
func (e Event) TwitterHashTag() optional.Value[string] { return e.twitterHashTag }
func (e Event) Type() optional.Value[EventType] { return e.eventType }
func (e Event) UpdatedDate() optional.Value[types.DateTime] { return e.updatedDate }

func (e Event) IsListedInExternalDirectory() optional.Value[bool] {
	return e.isListedInExternalDirectory
}

func (e Event) NotificationOptions() optional.Value[NotificationOptions] {
	return e.notificationOptions
}

// PaymentOptions returns a copy, changing it does not change the event
func (e Event) PaymentOptions() optional.Value[PaymentOptions] {
	return optional.Map(e.paymentOptions, PaymentOptions.clone)
}

// TrackInformation returns a copy, changing it does not change the event
func (e Event) TrackInformation() optional.Value[TrackInformation] {
	return optional.Map(e.trackInformation, TrackInformation.clone)
}

// Create builds an Event from a payload decoded from the remote service.
// Missing fields are left absent and unknown fields are ignored. The only
// failure is a field whose value has a different shape than documented.
func Create(props types.Payload) (Event, error) {
	var err error
	e := Event{}

	texts := []struct {
		key   string
		field *optional.Value[string]
	}{
		{"id", &e.id},
		{"description", &e.description},
		{"event_detail_url", &e.eventDetailURL},
		{"google_analytics_key", &e.googleAnalyticsKey},
		{"google_merchant_id", &e.googleMerchantID},
		{"location", &e.location},
		{"meta_data_tags", &e.metaDataTags},
		{"name", &e.name},
		{"payable_to", &e.payableTo},
		{"paypal_account_email", &e.paypalAccountEmail},
		{"registration_url", &e.registrationURL},
		{"theme_name", &e.themeName},
		{"time_zone_description", &e.timeZoneDescription},
		{"time_zone_id", &e.timeZoneID},
		{"title", &e.title},
		{"twitter_hash_tag", &e.twitterHashTag},
	}

	for _, t := range texts {
		if *t.field, err = mapper.Text(props, t.key); err != nil {
			return Event{}, err
		}
	}

	dates := []struct {
		key   string
		field *optional.Value[types.DateTime]
	}{
		{"active_date", &e.activeDate},
		{"cancelled_date", &e.cancelledDate},
		{"created_date", &e.createdDate},
		{"deleted_date", &e.deletedDate},
		{"end_date", &e.endDate},
		{"start_date", &e.startDate},
		{"updated_date", &e.updatedDate},
	}

	for _, d := range dates {
		if *d.field, err = mapper.DateTime(props, d.key); err != nil {
			return Event{}, err
		}
	}

	flags := []struct {
		key   string
		field *optional.Value[bool]
	}{
		{"are_registrants_public", &e.areRegistrantsPublic},
		{"is_calendar_displayed", &e.isCalendarDisplayed},
		{"is_checkin_available", &e.isCheckinAvailable},
		{"is_home_page_displayed", &e.isHomePageDisplayed},
		{"is_listed_in_external_directory", &e.isListedInExternalDirectory},
		{"is_map_displayed", &e.isMapDisplayed},
		{"is_virtual_event", &e.isVirtualEvent},
	}

	for _, f := range flags {
		if *f.field, err = mapper.Bool(props, f.key); err != nil {
			return Event{}, err
		}
	}

	if e.currencyType, err = mapper.Enum[CurrencyType](props, "currency_type"); err != nil {
		return Event{}, err
	}
	if e.status, err = mapper.Enum[Status](props, "status"); err != nil {
		return Event{}, err
	}
	if e.eventType, err = mapper.Enum[EventType](props, "type"); err != nil {
		return Event{}, err
	}
	if e.totalRegisteredCount, err = mapper.Integer(props, "total_registered_count"); err != nil {
		return Event{}, err
	}

	if e.address, err = mapper.Object(props, "address", addresses.Create); err != nil {
		return Event{}, err
	}
	if e.paymentAddress, err = mapper.Object(props, "payment_address", addresses.Create); err != nil {
		return Event{}, err
	}
	if e.contact, err = mapper.Object(props, "contact", contacts.Create); err != nil {
		return Event{}, err
	}
	if e.notificationOptions, err = mapper.Object(props, "notification_options", CreateNotificationOptions); err != nil {
		return Event{}, err
	}
	if e.onlineMeeting, err = mapper.Object(props, "online_meeting", CreateOnlineMeeting); err != nil {
		return Event{}, err
	}
	if e.paymentOptions, err = mapper.Object(props, "payment_options", CreatePaymentOptions); err != nil {
		return Event{}, err
	}
	if e.trackInformation, err = mapper.Object(props, "track_information", CreateTrackInformation); err != nil {
		return Event{}, err
	}

	return e, nil
}

// Serialize projects the event onto a wire payload using the documented
// absent policy of each field
func (e Event) Serialize() types.Payload {
	return e.SerializeWith(Catalog.Policy())
}

// SerializeWith projects the event onto a wire payload. Fields named by the
// policy are written as null when absent, all other absent fields are left out.
func (e Event) SerializeWith(policy mapper.Policy) types.Payload {
	p := mapper.NewProjection(policy)

	mapper.PutText(p, "id", e.id)
	mapper.PutEnum(p, "active_date", e.activeDate)
	mapper.PutObject(p, "address", e.address, addresses.Address.SerializeWith)
	mapper.PutBool(p, "are_registrants_public", e.areRegistrantsPublic)
	mapper.PutEnum(p, "cancelled_date", e.cancelledDate)
	mapper.PutObject(p, "contact", e.contact, contacts.Contact.SerializeWith)
	mapper.PutEnum(p, "created_date", e.createdDate)
	mapper.PutEnum(p, "currency_type", e.currencyType)
	mapper.PutEnum(p, "deleted_date", e.deletedDate)
	mapper.PutText(p, "description", e.description)
	mapper.PutEnum(p, "end_date", e.endDate)
	mapper.PutText(p, "event_detail_url", e.eventDetailURL)
	mapper.PutText(p, "google_analytics_key", e.googleAnalyticsKey)
	mapper.PutText(p, "google_merchant_id", e.googleMerchantID)
	mapper.PutBool(p, "is_calendar_displayed", e.isCalendarDisplayed)
	mapper.PutBool(p, "is_checkin_available", e.isCheckinAvailable)
	mapper.PutBool(p, "is_home_page_displayed", e.isHomePageDisplayed)
	mapper.PutBool(p, "is_listed_in_external_directory", e.isListedInExternalDirectory)
	mapper.PutBool(p, "is_map_displayed", e.isMapDisplayed)
	mapper.PutBool(p, "is_virtual_event", e.isVirtualEvent)
	mapper.PutText(p, "location", e.location)
	mapper.PutText(p, "meta_data_tags", e.metaDataTags)
	mapper.PutText(p, "name", e.name)
	mapper.PutObject(p, "notification_options", e.notificationOptions, NotificationOptions.SerializeWith)
	mapper.PutObject(p, "online_meeting", e.onlineMeeting, OnlineMeeting.SerializeWith)
	mapper.PutText(p, "payable_to", e.payableTo)
	mapper.PutObject(p, "payment_address", e.paymentAddress, addresses.Address.SerializeWith)
	mapper.PutObject(p, "payment_options", e.paymentOptions, PaymentOptions.SerializeWith)
	mapper.PutText(p, "paypal_account_email", e.paypalAccountEmail)
	mapper.PutText(p, "registration_url", e.registrationURL)
	mapper.PutEnum(p, "start_date", e.startDate)
	mapper.PutEnum(p, "status", e.status)
	mapper.PutText(p, "theme_name", e.themeName)
	mapper.PutText(p, "time_zone_description", e.timeZoneDescription)
	mapper.PutText(p, "time_zone_id", e.timeZoneID)
	mapper.PutText(p, "title", e.title)
	mapper.PutInteger(p, "total_registered_count", e.totalRegisteredCount)
	mapper.PutObject(p, "track_information", e.trackInformation, TrackInformation.SerializeWith)
	mapper.PutText(p, "twitter_hash_tag", e.twitterHashTag)
	mapper.PutEnum(p, "type", e.eventType)
	mapper.PutEnum(p, "updated_date", e.updatedDate)

	return p.Payload()
}

func (e Event) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Serialize())
}

func (e *Event) UnmarshalJSON(data []byte) error {
	props := types.Payload{}

	err := json.Unmarshal(data, &props)
	if err != nil {
		return fmt.Errorf("failed to unmarshal event: %w", err)
	}

	*e, err = Create(props)
	return err
}

func NewFromJSON(body []byte) (Event, error) {
	e := Event{}

	err := json.Unmarshal(body, &e)
	if err != nil {
		return Event{}, err
	}

	return e, nil
}

func NewFromSlice(body []byte) ([]Event, error) {
	evts := []Event{}

	err := json.Unmarshal(body, &evts)
	if err != nil {
		return nil, err
	}

	return evts, nil
}
