package problemgen

import (
	"fmt"

	"github.com/abhisek/middlemath/internal/sampler"
)

// AuditConfig controls an audit run.
type AuditConfig struct {
	// Trials is how many problems each generator produces.
	Trials int

	// Validators run in order on every problem; the first failure is
	// recorded.
	Validators []Validator
}

// DefaultAuditConfig returns an AuditConfig with the standard validator
// chain.
func DefaultAuditConfig() AuditConfig {
	return AuditConfig{
		Trials:     200,
		Validators: DefaultValidators(),
	}
}

// Finding is one problem that failed validation, or one generator call
// that panicked.
type Finding struct {
	Grade     Grade
	Topic     TopicID
	Generator int
	Problem   Problem
	Err       error
}

func (f Finding) String() string {
	return fmt.Sprintf("grade %d %s generator %d: %v", f.Grade, f.Topic, f.Generator, f.Err)
}

// AuditReport summarizes an audit run.
type AuditReport struct {
	Checked  int
	Findings []Finding
}

// OK reports whether the audit found nothing.
func (r AuditReport) OK() bool { return len(r.Findings) == 0 }

// Audit runs every generator of every registered topic cfg.Trials times
// and validates each problem.
func Audit(r *Registry, s *sampler.Sampler, cfg AuditConfig) AuditReport {
	var report AuditReport
	for _, grade := range r.Grades() {
		topics, err := r.Topics(grade)
		if err != nil {
			continue
		}
		for _, t := range topics {
			set, err := r.Lookup(grade, t.ID)
			if err != nil {
				report.Findings = append(report.Findings, Finding{Grade: grade, Topic: t.ID, Generator: -1, Err: err})
				continue
			}
			for i, gen := range set.Generators {
				for n := 0; n < cfg.Trials; n++ {
					report.Checked++
					p, err := runGenerator(gen, s)
					if err == nil {
						if verr := RunValidators(&p, cfg.Validators); verr != nil {
							err = verr
						}
					}
					if err != nil {
						report.Findings = append(report.Findings, Finding{
							Grade: grade, Topic: t.ID, Generator: i, Problem: p, Err: err,
						})
					}
				}
			}
		}
	}
	return report
}

// runGenerator calls gen, converting a panic into an error.
func runGenerator(gen Generator, s *sampler.Sampler) (p Problem, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("generator panicked: %v", rec)
		}
	}()
	return gen(s), nil
}
