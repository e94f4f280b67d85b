package opinion

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// ErrInvalidRange is returned for a trait range outside [0,1] or with Min > Max.
var ErrInvalidRange = errors.New("opinion: range must satisfy 0 ≤ min ≤ max ≤ 1")

// Voter is one member of the electorate.
type Voter struct {
	ID           int
	Internal     float64
	Expressed    float64
	Charisma     float64
	Stubbornness float64
}

// Adjust moves v's expressed opinion toward other's (weighted by other's
// charisma) and then back toward v's internal opinion (weighted by v's
// stubbornness).
func (v *Voter) Adjust(other Voter) {
	v.Expressed = (1-other.Charisma)*v.Expressed + other.Charisma*other.Expressed
	v.Expressed = (1-v.Stubbornness)*v.Expressed + v.Stubbornness*v.Internal
}

// CastVote returns the candidate whose policy is nearest v's expressed
// opinion, ties to the lower ID. ok is false when candidates is empty.
func (v Voter) CastVote(candidates []Candidate) (best Candidate, ok bool) {
	bestDist := math.Inf(1)
	for _, c := range candidates {
		d := math.Abs(c.Policy - v.Expressed)
		if d < bestDist || (d == bestDist && c.ID < best.ID) {
			best, bestDist, ok = c, d, true
		}
	}
	return best, ok
}

// Candidate stands for election with a fixed policy position.
type Candidate struct {
	ID     int
	Policy float64
}

// Range is a closed interval [Min, Max] within [0,1].
type Range struct {
	Min, Max float64
}

// Unit is the full range [0,1].
var Unit = Range{Min: 0, Max: 1}

// Validate checks 0 ≤ Min ≤ Max ≤ 1.
func (r Range) Validate() error {
	if r.Min < 0 || r.Max > 1 || r.Min > r.Max {
		return fmt.Errorf("%w: [%g,%g]", ErrInvalidRange, r.Min, r.Max)
	}
	return nil
}

// Sample draws uniformly from [Min, Max).
func (r Range) Sample(rng *rand.Rand) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// VoterFactory creates the voter for vertex index id.
type VoterFactory interface {
	Voter(id int, rng *rand.Rand) Voter
}

// CandidateFactory creates candidate id out of total.
type CandidateFactory interface {
	Candidate(id, total int, rng *rand.Rand) Candidate
}

// UniformVoters draws the internal opinion from [0,1) and the traits from
// their ranges. The zero value pins both traits at 0.
type UniformVoters struct {
	Stubbornness Range
	Charisma     Range
}

// Voter implements VoterFactory.
func (f UniformVoters) Voter(id int, rng *rand.Rand) Voter {
	internal := rng.Float64()
	return Voter{
		ID:           id,
		Internal:     internal,
		Expressed:    internal,
		Charisma:     f.Charisma.Sample(rng),
		Stubbornness: f.Stubbornness.Sample(rng),
	}
}

// Validate checks both ranges.
func (f UniformVoters) Validate() error {
	if err := f.Stubbornness.Validate(); err != nil {
		return fmt.Errorf("stubbornness: %w", err)
	}
	if err := f.Charisma.Validate(); err != nil {
		return fmt.Errorf("charisma: %w", err)
	}
	return nil
}

// UniformCandidates draws every policy from [0,1).
type UniformCandidates struct{}

// Candidate implements CandidateFactory.
func (UniformCandidates) Candidate(id, _ int, rng *rand.Rand) Candidate {
	return Candidate{ID: id, Policy: rng.Float64()}
}

// FixedCandidates spaces policies evenly: candidate id of C sits at
// (id+1)/(C+1).
type FixedCandidates struct{}

// Candidate implements CandidateFactory.
func (FixedCandidates) Candidate(id, total int, _ *rand.Rand) Candidate {
	return Candidate{ID: id, Policy: float64(id+1) / float64(total+1)}
}
