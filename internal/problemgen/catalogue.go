package problemgen

// catalogue is the product's set of topics, in display order per grade.
var catalogue = []Entry{
	{Grade: Grade7, Topic: TopicRatios, Set: grade7Ratios},
	{Grade: Grade7, Topic: TopicNumbers, Set: grade7Numbers},
	{Grade: Grade7, Topic: TopicExpressions, Set: grade7Expressions},
	{Grade: Grade7, Topic: TopicGeometry, Set: grade7Geometry},
	{Grade: Grade7, Topic: TopicStatistics, Set: grade7Statistics},

	{Grade: Grade8, Topic: TopicNumbers, Set: grade8Numbers},
	{Grade: Grade8, Topic: TopicExpressions, Set: grade8Expressions},
	{Grade: Grade8, Topic: TopicFunctions, Set: grade8Functions},
	{Grade: Grade8, Topic: TopicGeometry, Set: grade8Geometry},
	{Grade: Grade8, Topic: TopicStatistics, Set: grade8Statistics},
}

// def is the package-level registry, built once at startup.
var def *Registry

func init() {
	r, err := NewRegistry(catalogue...)
	if err != nil {
		panic(err)
	}
	def = r
}

// Default returns the registry built from the product catalogue.
func Default() *Registry {
	return def
}

// GenerateProblem produces one problem for grade and topic from the
// default registry.
func GenerateProblem(grade Grade, topic TopicID) (Problem, error) {
	return def.Generate(grade, topic)
}

// GetTopics lists the topics of grade from the default registry.
func GetTopics(grade Grade) ([]Topic, error) {
	return def.Topics(grade)
}

// ParseGrade converts a raw grade number against the default registry.
func ParseGrade(n int) (Grade, error) {
	return def.ParseGrade(n)
}

// ParseTopicID converts a raw topic name against the default registry.
func ParseTopicID(grade Grade, raw string) (TopicID, error) {
	return def.ParseTopicID(grade, raw)
}
