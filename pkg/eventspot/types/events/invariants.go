package events

import (
	"github.com/diwise/eventspot/pkg/eventspot/catalog"
)

// CheckInvariants reports the cross-field rules of the remote service that
// the event breaks. Create and Serialize never call it, the remote service
// remains the authority and a record that breaks a rule still maps cleanly.
func CheckInvariants(e Event) []catalog.Finding {
	findings := []catalog.Finding{}

	if virtual, ok := e.isVirtualEvent.Get(); ok && virtual {
		m, ok := e.onlineMeeting.Get()
		if !ok || !hasText(m.URL.OrElse("")) {
			findings = append(findings, catalog.Finding{
				Field:  "online_meeting.url",
				Reason: "required when is_virtual_event is true",
			})
		}
	}

	if po, ok := e.paymentOptions.Get(); ok {
		if po.Accepts(PaymentCheck) {
			if !hasText(e.payableTo.OrElse("")) {
				findings = append(findings, catalog.Finding{
					Field:  "payable_to",
					Reason: "required when payment_types lists CHECK",
				})
			}
			if !e.paymentAddress.IsSet() {
				findings = append(findings, catalog.Finding{
					Field:  "payment_address",
					Reason: "required when payment_types lists CHECK",
				})
			}
		}

		if po.Accepts(PaymentPayPal) && !hasText(e.paypalAccountEmail.OrElse("")) {
			findings = append(findings, catalog.Finding{
				Field:  "paypal_account_email",
				Reason: "required when payment_types lists PAYPAL",
			})
		}
	}

	if t, ok := e.trackInformation.Get(); ok {
		if t.IsGuestAnonymousEnabled.OrElse(false) && t.IsGuestNameRequired.OrElse(false) {
			findings = append(findings, catalog.Finding{
				Field:  "track_information.is_guest_anonymous_enabled",
				Reason: "cannot be true while is_guest_name_required is true",
			})
		}
	}

	return findings
}

func hasText(s string) bool {
	return s != ""
}
