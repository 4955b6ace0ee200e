package problemgen

import (
	"encoding/json"
	"math"
	"testing"
)

func TestAnswer_String(t *testing.T) {
	tests := []struct {
		a    Answer
		want string
	}{
		{Number(42), "42"},
		{Number(-3.5), "-3.5"},
		{Number(math.Copysign(0, -1)), "0"},
		{Number(0.1 + 0.2), "0.30000000000000004"},
		{Text("3:4"), "3:4"},
		{Text("x < 5"), "x < 5"},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestAnswer_Matches(t *testing.T) {
	tests := []struct {
		a    Answer
		user string
		want bool
	}{
		{Number(0.5), "1/2", true},
		{Number(0.5), "0.5", true},
		{Number(12), "3*4", true},
		{Number(12), "13", false},
		{Text("3:4"), "6:8", true},
		{Text("1/3"), "0.3333", true},
		{Text("positive"), "Positive", true},
		{Text("positive"), "negative", false},
		{Text("5^7"), "78125", true},
		{Text("x ≤ 5"), "x ≤ 5", true},
		{Text("x ≤ 5"), "x<=5", true},
		{Text("x ≤ 5"), "X <= 5", true},
		{Text("x ≤ 5"), "x≤5", true},
		{Text("x ≤ 5"), "x < 5", false},
		{Text("y ≥ -3"), "y >= -3", true},
		{Text("y ≥ -3"), "y > -3", false},
		{Text("x < 5"), "x<5", true},
		{Text("(3, -2)"), "(3,-2)", true},
		{Text("56%"), "56", true},
		{Text("56%"), "56 %", true},
		{Text("56%"), "0.56", false},
		{Text("56%"), "65", false},
	}
	for _, tt := range tests {
		if got := tt.a.Matches(tt.user); got != tt.want {
			t.Errorf("%v.Matches(%q) = %v, want %v", tt.a, tt.user, got, tt.want)
		}
	}
}

func TestAnswer_Display(t *testing.T) {
	if got := Number(0.5).Display(); got != "0.5 or 1/2" {
		t.Errorf("Display() = %q, want %q", got, "0.5 or 1/2")
	}
	if got := Text("3:4").Display(); got != "3:4" {
		t.Errorf("Display() = %q, want %q", got, "3:4")
	}
}

func TestAnswer_JSON(t *testing.T) {
	p := Problem{Question: "q", Answer: Number(2.5), Hint: "h", Solution: "s"}
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"question":"q","answer":2.5,"hint":"h","solution":"s"}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}

	var back Problem
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Answer.Equal(p.Answer) {
		t.Errorf("round trip answer = %v, want %v", back.Answer, p.Answer)
	}

	data, err = json.Marshal(Text("x = 1, y = 2"))
	if err != nil {
		t.Fatalf("marshal text: %v", err)
	}
	if string(data) != `"x = 1, y = 2"` {
		t.Errorf("Marshal(text) = %s", data)
	}
}

func TestAnswer_JSONRejectsNonFinite(t *testing.T) {
	if _, err := json.Marshal(Number(math.Inf(1))); err == nil {
		t.Error("expected error marshalling +Inf")
	}
}

func TestAnswer_UnmarshalInvalid(t *testing.T) {
	var a Answer
	if err := json.Unmarshal([]byte(`true`), &a); err == nil {
		t.Error("expected error for boolean answer")
	}
}
