package units

// Conversion factors between the metric quantities the design is computed in
// and the US-customary units used for pump curves and horsepower.
const (
	M3sToGPM   = 15850.323 // m^3/s to US gallons per minute
	GalToLiter = 3.78541
	MToFt      = 3.28084
	KPaPerM    = 9.806 // kPa of pressure per metre of water head
	M2PerAcre  = 4046.856
	SecPerDay  = 86400.0
)

func GpmFromM3s(q float64) float64 { return q * M3sToGPM }

func M3sFromGpm(q float64) float64 { return q / M3sToGPM }

func LpsFromGpm(q float64) float64 { return q * GalToLiter / 60.0 }

func M3hrFromGpm(q float64) float64 { return q * GalToLiter * 60.0 / 1000.0 }

func FtFromM(h float64) float64 { return h * MToFt }

func MFromFt(h float64) float64 { return h / MToFt }

func HeadMFromKPa(p float64) float64 { return p / KPaPerM }

func AcresFromM2(a float64) float64 { return a / M2PerAcre }
