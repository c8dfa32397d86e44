package wxcalc

import (
	"bytes"
	"strconv"
)

// 1観測点の導出結果データ
type Derived struct {
	PRES float64 // 気圧 pressure [hPa]
	TMP  float64 // 気温 temperature [C]
	DPT  float64 // 露点温度 dew point [C]

	// 導出項目 derived quantities
	THTA float64 // potential temperature [K]
	MR   float64 // mixing ratio [g/kg]
	RH   float64 // relative humidity [%]
	THTE float64 // equivalent potential temperature [K]
	WBT  float64 // wet bulb temperature [K], NaN if not converged
}

// """Compute the full set of derived quantities for one observation
//
// Args:
//
//	pres: pressure [hPa]
//	tmp: temperature [C]
//	dpt: dew point [C]
//
// Returns:
//
//	*Derived: the observation with every derived field filled.
//	          WBT is NaN when the wet bulb iteration does not
//	          converge; all other fields degrade to NaN/Inf only
//	          for physically invalid inputs.
//
// """
func Derive(pres float64, tmp float64, dpt float64) *Derived {
	d := &Derived{
		PRES: pres,
		TMP:  tmp,
		DPT:  dpt,
	}

	d.THTA = TempPressToPotTemp(tmp, pres)
	d.MR = DwptPressToMixRatio(dpt, pres)
	d.RH = RelativeHumidity(d.MR, pres, CToK(tmp))
	d.THTE = THTE(pres, tmp, dpt)

	// 湿球温度は相当温位を目標値として求める
	// (wet bulb along the moist adiabat through the parcel's THTE)
	d.WBT = WBT(pres, d.THTE)

	return d
}

// CSV形式
func (d *Derived) ToCSV(buf *bytes.Buffer) {
	buf.WriteString("PRES")
	buf.WriteString(",TMP")
	buf.WriteString(",DPT")
	buf.WriteString(",THTA")
	buf.WriteString(",MR")
	buf.WriteString(",RH")
	buf.WriteString(",THTE")
	buf.WriteString(",WBT")
	buf.WriteString("\n")

	writeFloat := func(v float64) {
		buf.WriteString(",")
		buf.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	buf.WriteString(strconv.FormatFloat(d.PRES, 'f', -1, 64))
	writeFloat(d.TMP)
	writeFloat(d.DPT)
	writeFloat(d.THTA)
	writeFloat(d.MR)
	writeFloat(d.RH)
	writeFloat(d.THTE)
	writeFloat(d.WBT)
	buf.WriteString("\n")
}
