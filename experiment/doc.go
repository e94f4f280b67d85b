// Package experiment runs batches of independent balance universes in
// parallel and aggregates their outcomes.
//
// Each run i draws a fresh Erdős–Rényi acquaintance graph G(Nodes,
// FriendProb) seeded with Seed+i, labels it (edge ⇒ Friend), and drives a
// universe with the configured policy to convergence. Runs share no state, so
// a batch is reproducible for a fixed Seed whatever the worker count.
//
// The Report carries per-run results in run order, the mean number of rounds
// and flips of converged runs, and the distribution of faction splits: the
// batch analogue of watching a single society settle.
package experiment
