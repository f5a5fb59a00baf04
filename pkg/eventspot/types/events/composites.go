package events

import (
	"slices"

	"github.com/diwise/eventspot/pkg/eventspot/mapper"
	"github.com/diwise/eventspot/pkg/eventspot/types"
	"github.com/diwise/eventspot/pkg/eventspot/types/optional"
)

// NotificationOptions controls whether event notifications are sent to the
// host contact's email address, and which ones
type NotificationOptions struct {
	IsOptedIn        optional.Value[bool]
	NotificationType optional.Value[NotificationType]
}

func CreateNotificationOptions(props types.Payload) (NotificationOptions, error) {
	var err error
	n := NotificationOptions{}

	if n.IsOptedIn, err = mapper.Bool(props, "is_opted_in"); err != nil {
		return NotificationOptions{}, err
	}
	if n.NotificationType, err = mapper.Enum[NotificationType](props, "notification_type"); err != nil {
		return NotificationOptions{}, err
	}

	return n, nil
}

func (n NotificationOptions) SerializeWith(policy mapper.Policy) types.Payload {
	p := mapper.NewProjection(policy)
	mapper.PutBool(p, "is_opted_in", n.IsOptedIn)
	mapper.PutEnum(p, "notification_type", n.NotificationType)
	return p.Payload()
}

// OnlineMeeting holds the details of a virtual event
type OnlineMeeting struct {
	Instructions      optional.Value[string]
	ProviderMeetingID optional.Value[string]
	ProviderType      optional.Value[string]
	URL               optional.Value[string]
}

func CreateOnlineMeeting(props types.Payload) (OnlineMeeting, error) {
	var err error
	m := OnlineMeeting{}

	if m.Instructions, err = mapper.Text(props, "instructions"); err != nil {
		return OnlineMeeting{}, err
	}
	if m.ProviderMeetingID, err = mapper.Text(props, "provider_meeting_id"); err != nil {
		return OnlineMeeting{}, err
	}
	if m.ProviderType, err = mapper.Text(props, "provider_type"); err != nil {
		return OnlineMeeting{}, err
	}
	if m.URL, err = mapper.Text(props, "url"); err != nil {
		return OnlineMeeting{}, err
	}

	return m, nil
}

func (m OnlineMeeting) SerializeWith(policy mapper.Policy) types.Payload {
	p := mapper.NewProjection(policy)
	mapper.PutText(p, "instructions", m.Instructions)
	mapper.PutText(p, "provider_meeting_id", m.ProviderMeetingID)
	mapper.PutText(p, "provider_type", m.ProviderType)
	mapper.PutText(p, "url", m.URL)
	return p.Payload()
}

// PaymentOptions lists the payment methods accepted for an event
type PaymentOptions struct {
	PaymentTypes optional.Value[[]PaymentType]
}

func CreatePaymentOptions(props types.Payload) (PaymentOptions, error) {
	var err error
	po := PaymentOptions{}

	if po.PaymentTypes, err = mapper.EnumList[PaymentType](props, "payment_types"); err != nil {
		return PaymentOptions{}, err
	}

	return po, nil
}

func (po PaymentOptions) SerializeWith(policy mapper.Policy) types.Payload {
	p := mapper.NewProjection(policy)
	mapper.PutTextList(p, "payment_types", po.PaymentTypes)
	return p.Payload()
}

// Accepts reports whether pt is listed among the payment types
func (po PaymentOptions) Accepts(pt PaymentType) bool {
	list, ok := po.PaymentTypes.Get()
	return ok && slices.Contains(list, pt)
}

func (po PaymentOptions) clone() PaymentOptions {
	return PaymentOptions{PaymentTypes: cloneList(po.PaymentTypes)}
}

// TrackInformation holds the settings shown on the registration page
type TrackInformation struct {
	EarlyFeeDate                 optional.Value[types.DateTime]
	GuestDisplayLabel            optional.Value[string]
	GuestLimit                   optional.Value[int64]
	InformationSections          optional.Value[[]InformationSection]
	IsGuestAnonymousEnabled      optional.Value[bool]
	IsGuestNameRequired          optional.Value[bool]
	IsRegistrationClosedManually optional.Value[bool]
	IsTicketingLinkDisplayed     optional.Value[bool]
	LateFeeDate                  optional.Value[types.DateTime]
	RegistrationLimitCount       optional.Value[int64]
	RegistrationLimitDate        optional.Value[types.DateTime]
}

func CreateTrackInformation(props types.Payload) (TrackInformation, error) {
	var err error
	t := TrackInformation{}

	if t.EarlyFeeDate, err = mapper.DateTime(props, "early_fee_date"); err != nil {
		return TrackInformation{}, err
	}
	if t.GuestDisplayLabel, err = mapper.Text(props, "guest_display_label"); err != nil {
		return TrackInformation{}, err
	}
	if t.GuestLimit, err = mapper.Integer(props, "guest_limit"); err != nil {
		return TrackInformation{}, err
	}
	if t.InformationSections, err = mapper.EnumList[InformationSection](props, "information_sections"); err != nil {
		return TrackInformation{}, err
	}
	if t.IsGuestAnonymousEnabled, err = mapper.Bool(props, "is_guest_anonymous_enabled"); err != nil {
		return TrackInformation{}, err
	}
	if t.IsGuestNameRequired, err = mapper.Bool(props, "is_guest_name_required"); err != nil {
		return TrackInformation{}, err
	}
	if t.IsRegistrationClosedManually, err = mapper.Bool(props, "is_registration_closed_manually"); err != nil {
		return TrackInformation{}, err
	}
	if t.IsTicketingLinkDisplayed, err = mapper.Bool(props, "is_ticketing_link_displayed"); err != nil {
		return TrackInformation{}, err
	}
	if t.LateFeeDate, err = mapper.DateTime(props, "late_fee_date"); err != nil {
		return TrackInformation{}, err
	}
	if t.RegistrationLimitCount, err = mapper.Integer(props, "registration_limit_count"); err != nil {
		return TrackInformation{}, err
	}
	if t.RegistrationLimitDate, err = mapper.DateTime(props, "registration_limit_date"); err != nil {
		return TrackInformation{}, err
	}

	return t, nil
}

func (t TrackInformation) SerializeWith(policy mapper.Policy) types.Payload {
	p := mapper.NewProjection(policy)

	mapper.PutEnum(p, "early_fee_date", t.EarlyFeeDate)
	mapper.PutText(p, "guest_display_label", t.GuestDisplayLabel)
	mapper.PutInteger(p, "guest_limit", t.GuestLimit)
	mapper.PutTextList(p, "information_sections", t.InformationSections)
	mapper.PutBool(p, "is_guest_anonymous_enabled", t.IsGuestAnonymousEnabled)
	mapper.PutBool(p, "is_guest_name_required", t.IsGuestNameRequired)
	mapper.PutBool(p, "is_registration_closed_manually", t.IsRegistrationClosedManually)
	mapper.PutBool(p, "is_ticketing_link_displayed", t.IsTicketingLinkDisplayed)
	mapper.PutEnum(p, "late_fee_date", t.LateFeeDate)
	mapper.PutInteger(p, "registration_limit_count", t.RegistrationLimitCount)
	mapper.PutEnum(p, "registration_limit_date", t.RegistrationLimitDate)

	return p.Payload()
}

func (t TrackInformation) clone() TrackInformation {
	t.InformationSections = cloneList(t.InformationSections)
	return t
}

func cloneList[E any](v optional.Value[[]E]) optional.Value[[]E] {
	return optional.Map(v, func(list []E) []E { return slices.Clone(list) })
}
