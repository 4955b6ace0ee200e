package problemgen

import (
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/middlemath/internal/sampler"
)

func constGenerator(q string) Generator {
	return func(*sampler.Sampler) Problem {
		return Problem{Question: q, Answer: Number(1), Hint: "h", Solution: "= 1"}
	}
}

func TestGetTopics_Order(t *testing.T) {
	tests := []struct {
		grade Grade
		want  []TopicID
	}{
		{Grade7, []TopicID{TopicRatios, TopicNumbers, TopicExpressions, TopicGeometry, TopicStatistics}},
		{Grade8, []TopicID{TopicNumbers, TopicExpressions, TopicFunctions, TopicGeometry, TopicStatistics}},
	}
	for _, tt := range tests {
		topics, err := GetTopics(tt.grade)
		if err != nil {
			t.Fatalf("GetTopics(%d): %v", tt.grade, err)
		}
		if len(topics) != len(tt.want) {
			t.Fatalf("GetTopics(%d) returned %d topics, want %d", tt.grade, len(topics), len(tt.want))
		}
		for i, topic := range topics {
			if topic.ID != tt.want[i] {
				t.Errorf("GetTopics(%d)[%d] = %q, want %q", tt.grade, i, topic.ID, tt.want[i])
			}
			if topic.Title == "" {
				t.Errorf("GetTopics(%d)[%d] has empty title", tt.grade, i)
			}
		}
	}
}

func TestGetTopics_Titles(t *testing.T) {
	topics, err := GetTopics(Grade7)
	if err != nil {
		t.Fatal(err)
	}
	if topics[0].Title != "Ratios & Proportional Relationships" {
		t.Errorf("first grade 7 title = %q", topics[0].Title)
	}
}

func TestGetTopics_UnknownGrade(t *testing.T) {
	for _, g := range []Grade{0, 6, 9, -7} {
		_, err := GetTopics(g)
		var ge *UnknownGradeError
		if !errors.As(err, &ge) {
			t.Fatalf("GetTopics(%d) error = %v, want *UnknownGradeError", g, err)
		}
		if ge.Grade != g {
			t.Errorf("UnknownGradeError.Grade = %d, want %d", ge.Grade, g)
		}
		if !errors.Is(err, ErrUnknownGrade) {
			t.Errorf("GetTopics(%d) error does not match ErrUnknownGrade", g)
		}
	}
}

func TestGenerateProblem_UnknownTopic(t *testing.T) {
	tests := []struct {
		grade Grade
		topic TopicID
	}{
		{Grade7, "nonexistent"},
		{Grade7, TopicFunctions}, // grade 8 only
		{Grade8, TopicRatios},    // grade 7 only
		{Grade8, ""},
	}
	for _, tt := range tests {
		_, err := GenerateProblem(tt.grade, tt.topic)
		var te *UnknownTopicError
		if !errors.As(err, &te) {
			t.Fatalf("GenerateProblem(%d, %q) error = %v, want *UnknownTopicError", tt.grade, tt.topic, err)
		}
		if te.Topic != tt.topic || te.Grade != tt.grade {
			t.Errorf("UnknownTopicError = %+v", te)
		}
		if !errors.Is(err, ErrUnknownTopic) {
			t.Errorf("error does not match ErrUnknownTopic")
		}
	}
}

func TestGenerateProblem_UnknownGrade(t *testing.T) {
	_, err := GenerateProblem(9, TopicNumbers)
	if !errors.Is(err, ErrUnknownGrade) {
		t.Fatalf("error = %v, want ErrUnknownGrade", err)
	}
}

func TestGenerateProblem_AllTopics(t *testing.T) {
	for _, g := range Grades() {
		topics, err := GetTopics(g)
		if err != nil {
			t.Fatal(err)
		}
		for _, topic := range topics {
			p, err := GenerateProblem(g, topic.ID)
			if err != nil {
				t.Fatalf("GenerateProblem(%d, %q): %v", g, topic.ID, err)
			}
			if p.Question == "" || p.Solution == "" {
				t.Errorf("GenerateProblem(%d, %q) returned an empty problem", g, topic.ID)
			}
		}
	}
}

func TestGenerateWith_EmptySet(t *testing.T) {
	r := &Registry{
		grades: map[Grade]*gradeTopics{
			Grade7: {order: []TopicID{"empty"}, sets: map[TopicID]TopicSet{"empty": {Title: "Empty"}}},
		},
		sampler: sampler.Default(),
	}
	_, err := r.Generate(Grade7, "empty")
	if !errors.Is(err, ErrUnknownTopic) {
		t.Fatalf("error = %v, want ErrUnknownTopic", err)
	}
}

func TestGenerateWith_Reproducible(t *testing.T) {
	for _, g := range Grades() {
		topics, _ := GetTopics(g)
		for _, topic := range topics {
			a, b := sampler.NewSeeded(7), sampler.NewSeeded(7)
			for i := 0; i < 20; i++ {
				pa, err := Default().GenerateWith(a, g, topic.ID)
				if err != nil {
					t.Fatal(err)
				}
				pb, _ := Default().GenerateWith(b, g, topic.ID)
				if pa.Question != pb.Question || pa.Solution != pb.Solution || !pa.Answer.Equal(pb.Answer) {
					t.Fatalf("grade %d %s: seeded runs diverged at %d:\n%q\n%q", g, topic.ID, i, pa.Question, pb.Question)
				}
			}
		}
	}
}

func TestGenerateWith_UsesEveryGenerator(t *testing.T) {
	seen := map[string]bool{}
	r, err := NewRegistry(Entry{
		Grade: Grade7,
		Topic: "stub",
		Set:   TopicSet{Title: "Stub", Generators: []Generator{constGenerator("a"), constGenerator("b"), constGenerator("c")}},
	})
	if err != nil {
		t.Fatal(err)
	}
	s := sampler.NewSeeded(1)
	for i := 0; i < 300; i++ {
		p, err := r.GenerateWith(s, Grade7, "stub")
		if err != nil {
			t.Fatal(err)
		}
		seen[p.Question] = true
	}
	if len(seen) != 3 {
		t.Errorf("generators used = %v, want all 3", seen)
	}
}

func TestNewRegistry_Validation(t *testing.T) {
	good := TopicSet{Title: "Good", Generators: []Generator{constGenerator("q")}}
	tests := []struct {
		name    string
		entries []Entry
		wantErr string
	}{
		{"unsupported grade", []Entry{{Grade: 6, Topic: "t", Set: good}}, "unsupported grade"},
		{"empty topic", []Entry{{Grade: Grade7, Topic: "", Set: good}}, "empty topic ID"},
		{"empty title", []Entry{{Grade: Grade7, Topic: "t", Set: TopicSet{Generators: good.Generators}}}, "empty title"},
		{"no generators", []Entry{{Grade: Grade7, Topic: "t", Set: TopicSet{Title: "T"}}}, "no generators"},
		{"nil generator", []Entry{{Grade: Grade7, Topic: "t", Set: TopicSet{Title: "T", Generators: []Generator{nil}}}}, "is nil"},
		{"duplicate", []Entry{{Grade: Grade7, Topic: "t", Set: good}, {Grade: Grade7, Topic: "t", Set: good}}, "duplicate entry"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(tt.entries...)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestNewRegistry_ReportsAllErrors(t *testing.T) {
	_, err := NewRegistry(
		Entry{Grade: 6, Topic: "a", Set: TopicSet{Title: "A", Generators: []Generator{constGenerator("q")}}},
		Entry{Grade: Grade8, Topic: "b", Set: TopicSet{Title: "B"}},
	)
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"unsupported grade", "no generators"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err, want)
		}
	}
}

func TestRegister(t *testing.T) {
	r, err := NewRegistry()
	if err != nil {
		t.Fatal(err)
	}
	e := Entry{Grade: Grade8, Topic: "extra", Set: TopicSet{Title: "Extra", Generators: []Generator{constGenerator("q")}}}
	if err := r.Register(e); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := r.Register(e); err == nil {
		t.Fatal("expected duplicate registration to fail")
	}
	if err := r.Register(Entry{Grade: Grade8, Topic: "bad"}); err == nil {
		t.Fatal("expected invalid entry to fail")
	}
	topics, err := r.Topics(Grade8)
	if err != nil || len(topics) != 1 || topics[0].ID != "extra" {
		t.Errorf("Topics = %v, %v", topics, err)
	}
	if _, err := r.Topics(Grade7); !errors.Is(err, ErrUnknownGrade) {
		t.Errorf("Topics(7) error = %v, want ErrUnknownGrade", err)
	}
}

func TestParse(t *testing.T) {
	g, err := ParseGrade(8)
	if err != nil || g != Grade8 {
		t.Fatalf("ParseGrade(8) = %v, %v", g, err)
	}
	if _, err := ParseGrade(5); !errors.Is(err, ErrUnknownGrade) {
		t.Errorf("ParseGrade(5) error = %v", err)
	}
	id, err := ParseTopicID(Grade8, "  Functions ")
	if err != nil || id != TopicFunctions {
		t.Fatalf("ParseTopicID = %q, %v", id, err)
	}
	if _, err := ParseTopicID(Grade7, "functions"); !errors.Is(err, ErrUnknownTopic) {
		t.Errorf("ParseTopicID(7, functions) error = %v", err)
	}
}

func TestWithSampler(t *testing.T) {
	a := Default().WithSampler(sampler.NewSeeded(99))
	b := Default().WithSampler(sampler.NewSeeded(99))
	pa, err := a.Generate(Grade7, TopicGeometry)
	if err != nil {
		t.Fatal(err)
	}
	pb, _ := b.Generate(Grade7, TopicGeometry)
	if pa.Question != pb.Question {
		t.Errorf("WithSampler runs diverged: %q vs %q", pa.Question, pb.Question)
	}
}
