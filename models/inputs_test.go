package models

import "testing"

func validRegister() RegisterInput {
	return RegisterInput{
		Name:            "Ada Lovelace",
		Username:        "ada",
		Email:           "ada@example.com",
		Password:        "hunter2hunter2",
		ConfirmPassword: "hunter2hunter2",
	}
}

func TestRegisterInputValidation(t *testing.T) {
	if err := CheckInput(validRegister()); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*RegisterInput)
	}{
		{"short name", func(r *RegisterInput) { r.Name = "A" }},
		{"short username", func(r *RegisterInput) { r.Username = "ab" }},
		{"bad email", func(r *RegisterInput) { r.Email = "not-an-email" }},
		{"short password", func(r *RegisterInput) { r.Password = "short"; r.ConfirmPassword = "short" }},
		{"mismatched confirm", func(r *RegisterInput) { r.ConfirmPassword = "different-pass" }},
	}
	for _, tt := range tests {
		in := validRegister()
		tt.mutate(&in)
		if err := CheckInput(in); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestItemInputValidation(t *testing.T) {
	if err := CheckInput(ItemInput{Name: "Latte", Price: 450}); err != nil {
		t.Errorf("valid item rejected: %v", err)
	}
	if err := CheckInput(ItemInput{Name: "", Price: 450}); err == nil {
		t.Error("nameless item accepted")
	}
	if err := CheckInput(ItemInput{Name: "Latte", Price: -1}); err == nil {
		t.Error("negative price accepted")
	}
	// Zero price is allowed (free samples).
	if err := CheckInput(ItemInput{Name: "Water", Price: 0}); err != nil {
		t.Errorf("zero price rejected: %v", err)
	}
}

func TestTaxRateInputValidation(t *testing.T) {
	tests := []struct {
		percent float64
		ok      bool
	}{
		{0, true},
		{2, true},
		{100, true},
		{-0.5, false},
		{101, false},
	}
	for _, tt := range tests {
		err := CheckInput(TaxRateInput{Percent: tt.percent})
		if (err == nil) != tt.ok {
			t.Errorf("TaxRateInput{%v}: err = %v, want ok=%v", tt.percent, err, tt.ok)
		}
	}
}
