package events

import (
	"github.com/diwise/eventspot/pkg/eventspot/catalog"
	"github.com/diwise/eventspot/pkg/eventspot/types/addresses"
	"github.com/diwise/eventspot/pkg/eventspot/types/contacts"
)

var notificationOptionsCatalog = &catalog.Catalog{
	Entity:  "NotificationOptions",
	Version: "v2",
	Fields: []catalog.Field{
		{Name: "is_opted_in", Kind: catalog.Boolean, Default: false},
		{Name: "notification_type", Kind: catalog.Enum, Values: []string{string(NotificationPerRegistration)}, Default: string(NotificationPerRegistration)},
	},
}

var onlineMeetingCatalog = &catalog.Catalog{
	Entity:  "OnlineMeeting",
	Version: "v2",
	Fields: []catalog.Field{
		{Name: "instructions", Kind: catalog.Text, MaxLength: 2500},
		{Name: "provider_meeting_id", Kind: catalog.Text, MaxLength: 50},
		{Name: "provider_type", Kind: catalog.Text, MaxLength: 20},
		{Name: "url", Kind: catalog.Text, MaxLength: 250, Requires: "required when is_virtual_event is true"},
	},
}

var paymentOptionsCatalog = &catalog.Catalog{
	Entity:  "PaymentOptions",
	Version: "v2",
	Fields: []catalog.Field{
		{Name: "payment_types", Kind: catalog.EnumList, Values: names(PaymentTypes), Requires: "CHECK requires payable_to and payment_address, PAYPAL requires paypal_account_email"},
	},
}

var trackInformationCatalog = &catalog.Catalog{
	Entity:  "TrackInformation",
	Version: "v2",
	Fields: []catalog.Field{
		{Name: "early_fee_date", Kind: catalog.DateTime},
		{Name: "guest_display_label", Kind: catalog.Text, MaxLength: 50, Default: "Guest(s)"},
		{Name: "guest_limit", Kind: catalog.Integer, Default: 0},
		{Name: "information_sections", Kind: catalog.EnumList, Values: names(InformationSections), Default: names(InformationSections)},
		{Name: "is_guest_anonymous_enabled", Kind: catalog.Boolean, Default: false, Requires: "is_guest_name_required must be false"},
		{Name: "is_guest_name_required", Kind: catalog.Boolean, Default: false, Requires: "is_guest_anonymous_enabled must be false"},
		{Name: "is_registration_closed_manually", Kind: catalog.Boolean, Default: false},
		{Name: "is_ticketing_link_displayed", Kind: catalog.Boolean, Default: false},
		{Name: "late_fee_date", Kind: catalog.DateTime},
		{Name: "registration_limit_count", Kind: catalog.Integer},
		{Name: "registration_limit_date", Kind: catalog.DateTime},
	},
}

// Catalog is the published field catalog of an event. Every field is omitted
// from serialized payloads when absent.
var Catalog = &catalog.Catalog{
	Entity:  "Event",
	Version: "v2",
	Fields: []catalog.Field{
		{Name: "id", Kind: catalog.Text, MaxLength: 26},
		{Name: "active_date", Kind: catalog.DateTime},
		{Name: "address", Kind: catalog.Object, Nested: addresses.Catalog},
		{Name: "are_registrants_public", Kind: catalog.Boolean, Default: false},
		{Name: "cancelled_date", Kind: catalog.DateTime},
		{Name: "contact", Kind: catalog.Object, Nested: contacts.Catalog},
		{Name: "created_date", Kind: catalog.DateTime},
		{Name: "currency_type", Kind: catalog.Enum, Values: names(CurrencyTypes), Default: string(CurrencyUSD)},
		{Name: "deleted_date", Kind: catalog.DateTime},
		{Name: "description", Kind: catalog.Text, MaxLength: 350},
		{Name: "end_date", Kind: catalog.DateTime},
		{Name: "event_detail_url", Kind: catalog.Text},
		{Name: "google_analytics_key", Kind: catalog.Text, MaxLength: 20},
		{Name: "google_merchant_id", Kind: catalog.Text, MaxLength: 20},
		{Name: "is_calendar_displayed", Kind: catalog.Boolean, Default: true},
		{Name: "is_checkin_available", Kind: catalog.Boolean, Default: false},
		{Name: "is_home_page_displayed", Kind: catalog.Boolean, Default: false},
		{Name: "is_listed_in_external_directory", Kind: catalog.Boolean, Default: false},
		{Name: "is_map_displayed", Kind: catalog.Boolean, Default: true},
		{Name: "is_virtual_event", Kind: catalog.Boolean, Default: false, Requires: "online_meeting.url when true"},
		{Name: "location", Kind: catalog.Text, MaxLength: 50},
		{Name: "meta_data_tags", Kind: catalog.Text, MaxLength: 100},
		{Name: "name", Kind: catalog.Text, MaxLength: 100},
		{Name: "notification_options", Kind: catalog.Object, Nested: notificationOptionsCatalog},
		{Name: "online_meeting", Kind: catalog.Object, Nested: onlineMeetingCatalog, Requires: "required when is_virtual_event is true"},
		{Name: "payable_to", Kind: catalog.Text, MaxLength: 128, Requires: "required when payment_types lists CHECK"},
		{Name: "payment_address", Kind: catalog.Object, Nested: addresses.Catalog, Requires: "required when payment_types lists CHECK"},
		{Name: "payment_options", Kind: catalog.Object, Nested: paymentOptionsCatalog},
		{Name: "paypal_account_email", Kind: catalog.Text, MaxLength: 128, Requires: "required when payment_types lists PAYPAL"},
		{Name: "registration_url", Kind: catalog.Text, MaxLength: 250},
		{Name: "start_date", Kind: catalog.DateTime},
		{Name: "status", Kind: catalog.Enum, Values: names(Statuses)},
		{Name: "theme_name", Kind: catalog.Text, Default: "Default"},
		{Name: "time_zone_description", Kind: catalog.Text, MaxLength: 80},
		{Name: "time_zone_id", Kind: catalog.Text, MaxLength: 40},
		{Name: "title", Kind: catalog.Text, MaxLength: 100},
		{Name: "total_registered_count", Kind: catalog.Integer},
		{Name: "track_information", Kind: catalog.Object, Nested: trackInformationCatalog},
		{Name: "twitter_hash_tag", Kind: catalog.Text, MaxLength: 30},
		{Name: "type", Kind: catalog.Enum, Values: names(EventTypes)},
		{Name: "updated_date", Kind: catalog.DateTime},
	},
}
