package bot

import "testing"

func TestParseIngredientList(t *testing.T) {
	got, err := parseIngredientList("Coffee:2, Milk:1")
	if err != nil {
		t.Fatalf("parseIngredientList: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("parsed %d ingredients, want 2", len(got))
	}
	if got[0].Ingredient.Name != "Coffee" || got[0].Quantity != 2 {
		t.Errorf("first = %+v", got[0])
	}
	if got[1].Ingredient.Name != "Milk" || got[1].Quantity != 1 {
		t.Errorf("second = %+v", got[1])
	}

	bad := []string{"Coffee", "Coffee:x", "Coffee:0", "Coffee:-1"}
	for _, s := range bad {
		if _, err := parseIngredientList(s); err == nil {
			t.Errorf("parseIngredientList(%q) should fail", s)
		}
	}
}
