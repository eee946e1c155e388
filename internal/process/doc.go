// Package process provides concrete stochastic process models.
//
// Each model implements the [quant.Process] interface, mapping (t, x) to
// drift and diffusion and a base state plus increment to a new state:
//
//   - [Heston]: two-factor square-root stochastic volatility
//   - [BlackScholes]: one-factor log-normal diffusion
//
// Model parameters live behind relinkable quote and curve handles and are
// read fresh on every evaluation, so live market-data changes propagate
// into running evaluations without reconstruction. Evaluation is a pure
// per-step computation; the time loop belongs to the mc package.
package process
