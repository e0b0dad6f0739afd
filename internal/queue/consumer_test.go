package queue

import (
	"strings"
	"testing"

	"CoBag/internal/model"
)

func TestBuildMailCategories(t *testing.T) {
	recipient := &model.User{DisplayName: "Amina", Email: "amina@example.com"}

	tests := []struct {
		category    string
		wantSubject string
		wantInBody  []string
	}{
		{"match_proposed", "New match proposal on CoBag", []string{"Amina", "Karim", "Paris → Alger"}},
		{"match_accepted", "Your match proposal was accepted", []string{"Karim", "Paris → Alger"}},
		{"match_rejected", "Your match proposal was declined", []string{"Karim"}},
		{"match_completed", "Your shipment was completed", []string{"Paris → Alger"}},
		{"message_created", "New message in your match conversation", []string{"Karim"}},
		{"proposal_reminder", "A match proposal is still waiting for you", []string{"Amina"}},
		{"unknown_category", "CoBag notification", []string{"Amina"}},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			mail := buildMail(recipient, model.MailTaskMessage{
				Category:         tt.category,
				CounterpartName:  "Karim",
				RouteDescription: "Paris → Alger",
			})

			if mail.To != recipient.Email {
				t.Errorf("To = %q, want %q", mail.To, recipient.Email)
			}
			if mail.Subject != tt.wantSubject {
				t.Errorf("Subject = %q, want %q", mail.Subject, tt.wantSubject)
			}
			if mail.Category != tt.category {
				t.Errorf("Category = %q, want %q", mail.Category, tt.category)
			}
			for _, fragment := range tt.wantInBody {
				if !strings.Contains(mail.TextBody, fragment) {
					t.Errorf("TextBody missing %q:\n%s", fragment, mail.TextBody)
				}
			}
		})
	}
}
