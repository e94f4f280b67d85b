package opinion

import "sort"

// Tally is one line of an election result.
type Tally struct {
	Candidate Candidate
	Votes     int
}

// Rule maps an electorate and a slate to a ranked result.
type Rule interface {
	Name() string
	Result(voters []Voter, candidates []Candidate) []Tally
}

// Plurality gives each voter one vote for its nearest candidate and ranks by
// votes, ties to the lower candidate ID. Candidates without votes are ranked
// last.
type Plurality struct{}

// Name implements Rule.
func (Plurality) Name() string { return "plurality" }

// Result implements Rule.
func (Plurality) Result(voters []Voter, candidates []Candidate) []Tally {
	pos := make(map[int]int, len(candidates))
	out := make([]Tally, len(candidates))
	for i, c := range candidates {
		pos[c.ID] = i
		out[i] = Tally{Candidate: c}
	}
	for _, v := range voters {
		if c, ok := v.CastVote(candidates); ok {
			out[pos[c.ID]].Votes++
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Votes != out[j].Votes {
			return out[i].Votes > out[j].Votes
		}
		return out[i].Candidate.ID < out[j].Candidate.ID
	})

	return out
}
