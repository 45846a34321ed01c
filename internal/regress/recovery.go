package regress

import "math"

// Recovery compares one fitted coefficient against its analytically known
// value. Gap is the absolute difference; GapStdErrs expresses it in units
// of the coefficient's standard error, so values within a few standard
// errors indicate successful recovery.
type Recovery struct {
	Predictor  string  `json:"predictor"`
	Analytic   float64 `json:"analytic"`
	Estimate   float64 `json:"estimate"`
	StdErr     float64 `json:"std_err"`
	Gap        float64 `json:"gap"`
	GapStdErrs float64 `json:"gap_std_errs"`
}

// CompareRecovery builds a Recovery for one predictor of a fit.
func CompareRecovery(fit *Fit, predictor string, analytic float64) (Recovery, error) {
	est, err := fit.Coefficient(predictor)
	if err != nil {
		return Recovery{}, err
	}

	r := Recovery{
		Predictor: predictor,
		Analytic:  analytic,
		Estimate:  est,
		StdErr:    fit.StdErrors[predictor],
		Gap:       math.Abs(est - analytic),
	}
	if r.StdErr > 0 {
		r.GapStdErrs = r.Gap / r.StdErr
	}
	return r, nil
}
