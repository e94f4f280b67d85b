// Package opinion simulates opinion diffusion over an acquaintance network
// and elections under a pluggable voting rule.
//
// Every voter has a fixed internal opinion in [0,1], an expressed opinion
// that starts equal to it, a charisma (pull on others) and a stubbornness
// (pull back toward its own internal opinion). When voter a meets b:
//
//	e_a = (1 - c_b)·e_a + c_b·e_b
//	e_a = (1 - s_a)·e_a + s_a·i_a
//
// Candidates hold a fixed policy position. A voter votes for the candidate
// nearest its expressed opinion; ties go to the lower candidate ID. Plurality
// ranks candidates by vote count, ties again by lower ID.
//
// A World places voters on the vertices of a core.Graph (Barabási–Albert by
// default) and Diffuse draws random edges, letting a random endpoint adjust
// toward the other.
package opinion
