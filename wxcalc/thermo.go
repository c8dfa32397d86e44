package wxcalc

import "math"

//--------------------------------------
// 基本的な熱力学変換 / basic thermodynamic conversions
//--------------------------------------

// """Converts Celsius to Kelvin temperature
// """
func CToK(c float64) float64 {
	return c + 273.15
}

// """Converts a temperature and pressure to potential temperature
// Uses Poisson's Equation
// (Wallace and Hobbs equation 3.54 on pg. 78)
//
//	theta = T(p0/p)^(R/cp)
//
// Args:
//
//	temp: temperature [C]
//	press: pressure [hPa]
//
// Returns:
//
//	potential temperature (aka theta) [K]
//
// """
func TempPressToPotTemp(temp float64, press float64) float64 {
	const R = 287.   // J K-1 kg-1
	const cp = 1004. // J K-1 kg-1
	const p0 = 1000. // hPa

	return CToK(temp) * math.Pow(p0/press, R/cp)
}

// """Converts a potential temperature and pressure back to temperature
// Inverse of Poisson's Equation
//
// Args:
//
//	theta: potential temperature [K]
//	press: pressure [hPa]
//
// Returns:
//
//	temperature [C]
//
// """
func TempFromPotTemp(theta float64, press float64) float64 {
	const R = 287.
	const cp = 1004.
	const p0 = 1000.

	return theta*math.Pow(press/p0, R/cp) - 273.15
}

// """Converts a Dewpoint and Pressure to a Mixing Ratio
// From: http://www.srh.noaa.gov/images/epz/wxcalc/vaporPressure.pdf
//
//	and http://www.srh.noaa.gov/images/epz/wxcalc/mixingRatio.pdf
//
//	w = 621.97 * (e/(press-e))
//	    from Wallace and Hobbs 3.59
//	    with some algebra to solve for w.
//	    epsilon = 0.622. w is in g/kg (not kg/kg)
//
//	e = 6.11 * 10 ^ (7.5 * Tdew/(237.3+Tdew))
//
// Args:
//
//	Tdew: dewpoint temperature [C]
//	press: pressure [hPa]
//
// Returns:
//
//	actual mixing ratio [g/kg]
//
// """
func DwptPressToMixRatio(Tdew float64, press float64) float64 {
	e := 6.11 * math.Pow(10, 7.5*Tdew/(237.3+Tdew))
	w := 621.97 * (e / (press - e))

	return w
}

// """Converts a mixing ratio and pressure back to a dewpoint temperature
// Inversion of the vapor pressure form used by DwptPressToMixRatio:
// first solve w = 621.97*e/(press-e) for e, then
// e = 6.11 * 10^(7.5*Tdew/(237.3+Tdew)) for Tdew.
//
// Args:
//
//	w: mixing ratio [g/kg]
//	press: pressure [hPa]
//
// Returns:
//
//	dewpoint temperature [C]
//
// """
func MixRatioToDwpt(w float64, press float64) float64 {
	e := w * press / (621.97 + w)
	x := math.Log10(e / 6.11)

	return 237.3 * x / (7.5 - x)
}

// """Returns mixing ratio over water, in g/kg, given relative humidity in %,
// pressure in hPa and temperature in K.
// """
func RhToMrWat(rh float64, p float64, t float64) float64 {
	return rh * 0.01 * Satmixwat(p, t)
}

// """Returns relative humidity in %, given mixing ratio in g/kg,
// pressure in hPa and temperature in K. Inverse of RhToMrWat.
// """
func RelativeHumidity(w float64, p float64, t float64) float64 {
	return w / Satmixwat(p, t) * 100.
}

// """Returns saturation mixing ratio over water, in g/kg, given pressure in hPa and
// temperature in K.
// """
func Satmixwat(p float64, t float64) float64 {
	es := Svpwat(t)
	return (622. * es) / p
}

// """Returns saturation vapor pressure over water, in hPa, given temperature in K.
// """
func Svpwat(t float64) float64 {
	const a0 = 0.999996876e0
	const a1 = -0.9082695004e-2
	const a2 = 0.7873616869e-4
	const a3 = -0.6111795727e-6
	const a4 = 0.4388418740e-8
	const a5 = -0.2988388486e-10
	const a6 = 0.2187442495e-12
	const a7 = -0.1789232111e-14
	const a8 = 0.1111201803e-16
	const a9 = -0.3099457145e-19
	const b = 0.61078e+1
	t -= 273.16

	return b / math.Pow(a0+t*(a1+t*(a2+t*(a3+t*(a4+t*(a5+t*(a6+t*(a7+t*(a8+t*a9)))))))), 8.)
}

// """Converts a pressure at one geopotential height to the pressure at a
// second height using the scale height H = R*Ta/g0
//
//	p2 = p1*exp(-(Z2-Z1)/H)
//
// Args:
//
//	press: pressure at height z1 [hPa]
//	z1: geopotential height of the known pressure [m]
//	z2: geopotential height of the wanted pressure [m]
//	ta: layer mean temperature [K]
//
// Returns:
//
//	pressure at z2 [hPa]
//
// """
func PressFromGeopot(press float64, z1 float64, z2 float64, ta float64) float64 {
	const R = 287.     // J K-1 kg-1
	const g0 = 9.80665 // m s-2

	// scale height [m]
	H := R * ta / g0

	return press * math.Exp(-(z2-z1)/H)
}
