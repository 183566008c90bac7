/*
Package chebint computes one-dimensional integral transforms of power-law
kernels against monomial weights, I_n(X) = ∫₀¹ wⁿ K(wX) dw, through a staged
scheme: an expensive build phase fits a singularity-free Chebyshev
approximation to the integral once per kernel parameterization, and a cheap
query phase evaluates that approximation at arbitrary X via the Clenshaw
recurrence.
*/
package chebint
