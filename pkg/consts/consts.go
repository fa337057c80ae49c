// Package consts holds fundamental physical constants in CGS units.
//
// Reference: NIST CODATA 2018 (http://physics.nist.gov/constants)
package consts

const (
	LIGHT       = 2.99792458e+10    // Speed of light (cm s^-1)
	GRAVITY     = 6.67430e-8        // Gravitational constant (cm^3 g^-1 s^-2)
	CHARGE      = 1.602176634e-19   // Elementary charge (C)
	BOLTZMANN   = 1.380649e-16      // Boltzmann constant (erg K^-1)
	AVOGADRO    = 6.02214076e+23    // Avogadro constant (mol^-1)
	PLANCK      = 6.62607015e-27    // Planck constant (erg s)
	PLANCKBAR   = 1.05457182e-27    // Reduced Planck constant (erg s)
	ATOMICMASS  = 1.66053906660e-24 // Atomic mass unit (g)
	ELECTRON    = 9.1093837015e-28  // Electron mass (g)
	ELECTRONV   = 1.602176634e-12   // Electron volt (erg)
	SOLARMASS   = 1.98848e+33       // Solar mass (g)
	SOLARRADIUS = 6.957e+10         // Solar radius (cm)
)

// FundamentalConstant is one self-consistent set of constants expressed in a
// single unit system.
type FundamentalConstant struct {
	C      float64 // speed of light
	G      float64 // gravitational constant
	E      float64 // elementary charge
	KB     float64 // Boltzmann constant
	NA     float64 // Avogadro constant
	H      float64 // Planck constant
	Hbar   float64 // reduced Planck constant
	MU     float64 // atomic mass unit
	ME     float64 // electron mass
	EV     float64 // electron volt
	MSolar float64 // solar mass
	RSolar float64 // solar radius
}

// CGS is the constant table in centimeter-gram-second units.
var CGS = FundamentalConstant{
	C:      LIGHT,
	G:      GRAVITY,
	E:      CHARGE,
	KB:     BOLTZMANN,
	NA:     AVOGADRO,
	H:      PLANCK,
	Hbar:   PLANCKBAR,
	MU:     ATOMICMASS,
	ME:     ELECTRON,
	EV:     ELECTRONV,
	MSolar: SOLARMASS,
	RSolar: SOLARRADIUS,
}
