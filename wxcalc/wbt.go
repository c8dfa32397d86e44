package wxcalc

import "math"

// """Parcel temperature if lifted above the lcl
// (aka, the wet bulb temperature, following moist adiabatic lapse rate)
//
// Finds the temperature at which the saturated-parcel equivalent
// potential temperature THTE(pres, t, t) matches the target tht,
// by damped Newton iteration in degrees C.
//
// Args:
//
//	pres: pressure [hPa]
//	tht: target potential temperature [K]
//
// Returns:
//
//	wet bulb temperature [K], or NaN when the iteration
//	does not converge within 100 steps
//
// """
func WBT(pres float64, tht float64) float64 {
	// Set convergence and initial guess in degrees C.
	const epsi = .001
	tgnu := tht - 273.15

	// Set a limit of 100 iterations.  Compute TENU, TENUP, the
	// THTE's at, one degree above the guess temperature.
	// Do Newton iteration.
	iterN := 0
	convrg := false
	for iterN < 100 && !convrg {
		iterN++
		tgnup := tgnu + 1.
		tenu := THTE(pres, tgnu, tgnu)
		tenup := THTE(pres, tgnup, tgnup)

		// Compute the correction, DELTG; return on convergence.
		// A non-positive (or NaN) slope leaves the guess unchanged and
		// consumes an iteration.
		denom := tenup - tenu
		if denom > 0 {
			cor := (tht - tenu) / denom
			tgnu = tgnu + cor
			if math.Abs(cor) < epsi {
				convrg = true
			}
		}
	}

	if !convrg {
		return math.NaN()
	}
	return tgnu + 273.15
}
