package validation

import (
	"encoding/json"
	"testing"

	"github.com/freelansy/freelansy/internal/dto"
	"github.com/freelansy/freelansy/internal/models"
)

func TestRegisterRequestValid(t *testing.T) {
	req := dto.RegisterRequest{
		Name:           "Awa Diallo",
		Email:          "awa@example.com",
		Password:       "s3cret-pass",
		Country:        "SN",
		Phone:          "+221 77 123 45 67",
		FreelancerType: "developer",
	}
	if fields := Struct(&req); fields != nil {
		t.Fatalf("expected valid, got %v", fields)
	}
}

func TestRegisterRequestErrors(t *testing.T) {
	req := dto.RegisterRequest{
		Name:     "A",
		Email:    "not-an-email",
		Password: "short",
		Phone:    "abc",
	}
	fields := Struct(&req)
	if fields == nil {
		t.Fatal("expected validation errors")
	}

	// Errors are keyed by JSON field names, not Go field names.
	for _, key := range []string{"name", "email", "password", "country", "phone", "freelancerType"} {
		if len(fields[key]) == 0 {
			t.Errorf("expected an error for %q, got %v", key, fields)
		}
	}
	if got := fields["email"][0]; got != "Adresse e-mail invalide." {
		t.Errorf("email message = %q", got)
	}
	if got := fields["phone"][0]; got != "Numéro de téléphone invalide." {
		t.Errorf("phone message = %q", got)
	}
	if got := fields["password"][0]; got != "Le mot de passe doit contenir au moins 8 caractères." {
		t.Errorf("password message = %q", got)
	}
}

func TestMissionRequestAmountRules(t *testing.T) {
	base := dto.MissionRequest{
		Title:    "Site vitrine",
		ClientID: "0c7f1f42-9d3a-4a7e-8a66-1f9a4a9a0c11",
		Date:     "2026-03-01",
		Status:   "pending",
	}

	zero := base
	zero.Amount = 0
	fields := Struct(&zero)
	if fields == nil || len(fields["amount"]) == 0 {
		t.Fatalf("expected amount error, got %v", fields)
	}

	negative := base
	negative.Amount = -10
	fields = Struct(&negative)
	if fields == nil || fields["amount"][0] != "Le montant doit être positif." {
		t.Fatalf("expected positive-amount message, got %v", fields)
	}

	valid := base
	valid.Amount = 1200.5
	if fields := Struct(&valid); fields != nil {
		t.Fatalf("expected valid, got %v", fields)
	}
}

func TestMissionRequestStatusEnum(t *testing.T) {
	req := dto.MissionRequest{
		Title:    "Audit SEO",
		ClientID: "0c7f1f42-9d3a-4a7e-8a66-1f9a4a9a0c11",
		Amount:   300,
		Date:     "2026-03-01",
	}

	for _, status := range models.MissionStatuses {
		req.Status = status
		if fields := Struct(&req); fields != nil {
			t.Errorf("status %q rejected: %v", status, fields)
		}
	}

	for _, status := range []string{"archived", "Paid", "PENDING"} {
		req.Status = status
		fields := Struct(&req)
		if fields == nil || fields["status"][0] != "Le statut est invalide." {
			t.Errorf("status %q: expected enum error, got %v", status, fields)
		}
	}
}

func TestAmountAcceptsQuotedNumber(t *testing.T) {
	// Forms post amounts as strings; the Number type absorbs both shapes.
	var req dto.MissionRequest
	payload := `{"title":"Logo","clientId":"0c7f1f42-9d3a-4a7e-8a66-1f9a4a9a0c11","amount":"450.75","date":"2026-01-15","status":"paid"}`
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		t.Fatal(err)
	}
	if float64(req.Amount) != 450.75 {
		t.Fatalf("amount = %v, want 450.75", req.Amount)
	}
	if fields := Struct(&req); fields != nil {
		t.Fatalf("expected valid, got %v", fields)
	}
}

func TestLoosePhone(t *testing.T) {
	ok := []string{"+33612345678", "06 12 34 56 78", "(221) 77-123-4567", "1234567"}
	bad := []string{"123456", "phone", "+33 ab cd", ""}

	for _, p := range ok {
		req := dto.ClientRequest{Name: "Acme", Phone: p}
		if fields := Struct(&req); fields != nil {
			t.Errorf("phone %q rejected: %v", p, fields)
		}
	}
	for _, p := range bad {
		if p == "" {
			continue // omitempty: empty phone is allowed
		}
		req := dto.ClientRequest{Name: "Acme", Phone: p}
		if fields := Struct(&req); fields == nil {
			t.Errorf("phone %q accepted, want rejection", p)
		}
	}
}
