// Package criteria scores proposed network extensions against a current
// network.
//
// A Criterion evaluates one aspect of a proposal and returns a weighted
// score; negative scores mean the criterion was not met. Two concrete kinds
// exist, mirroring the planning workflow:
//
//   - Cost: compares estimated construction/staffing/vehicle costs against a
//     budget using a fixed-cost table.
//   - Performance: measures max-flow improvement between terminal sets on
//     the combined (current + proposed) network, or checks a supply/demand
//     feasibility problem.
//
// Any flow-engine failure during a performance evaluation means "criterion
// not satisfied" (score −weight), never a process-fatal error; the same
// policy applies per criterion inside Group.Evaluate, so one broken
// criterion cannot abort a batch evaluation.
//
// A Group splits criteria into essential and desirable. Essential criteria
// that score ≤ 0 are reported as failed but still contribute to the total,
// dragging infeasible proposals down the ranking rather than discarding
// them. Groups round-trip through JSON criteria files, and can additionally
// be loaded from TOML.
package criteria
