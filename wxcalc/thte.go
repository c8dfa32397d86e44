package wxcalc

import "math"

// """Compute equivalent potential temperature
//
// Args:
//
//	p: pressure [hPa]
//	t: temperature [C]
//	td: dew point [C]
//
// Returns:
//
//	THTE (equivalent potential temperature) [K]
//
// """
func THTE(p float64, t float64, td float64) float64 {
	// 水蒸気圧 vapor pressure [hPa]
	vapr := 6.112 * math.Exp((17.67*td)/(td+243.5))

	// 気圧補正 pressure correction
	corr := 1.001 + ((p-100.)/900.)*.0034
	e := corr * vapr

	// 重量絶対湿度 mixing ratio [g/kg]
	mixr := .62197 * (e / (p - e)) * 1000.

	// temp of lcl from gempak sub
	TLCL := (800.*(td+273.15-56.)/(800.+(td+273.15-56.)*
		math.Log((t+273.15)/(td+273.15)))) + 56.

	E := (287. / 1004.) * (1. - (.28 * .001 * mixr))
	thtm := (273.15 + t) * math.Pow(1000./p, E)
	e = ((3.376 / TLCL) - .00254) * (mixr * (1. + .81*.001*mixr))

	return thtm * math.Exp(e)
}
