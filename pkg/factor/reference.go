package factor

import "github.com/edp1096/natural-unit/pkg/consts"

// CGSToSI converts grams, centimeters and seconds into kilograms, meters and
// seconds.
func CGSToSI() ConversionFactor {
	return New(1e+3, 1e+2, 1)
}

// CGSToGeom converts CGS into geometrized units (c = G = 1) with lengths kept
// in centimeters.
func CGSToGeom() ConversionFactor {
	c := consts.CGS
	return New(
		c.G/(c.C*c.C),
		1,
		c.C,
	)
}

// CGSToNatural converts CGS into natural units (hbar = c = 1, energies in eV).
func CGSToNatural() ConversionFactor {
	c := consts.CGS
	return New(
		c.EV/c.Hbar,
		c.EV/(c.Hbar*c.C),
		(c.C*c.C)/c.EV,
	)
}

// CGSToSolarGeom converts CGS into geometrized units measured in solar radii.
func CGSToSolarGeom() ConversionFactor {
	c := consts.CGS
	return New(
		c.G/((c.C*c.C)*c.RSolar),
		1/c.RSolar,
		c.C/c.RSolar,
	)
}

// CGSToSolarMassGeom converts CGS into geometrized units where one solar mass
// is the unit of mass, length and time.
func CGSToSolarMassGeom() ConversionFactor {
	c := consts.CGS
	return New(
		1/c.MSolar,
		(c.C*c.C)/(c.G*c.MSolar),
		(c.C*c.C*c.C)/(c.G*c.MSolar),
	)
}
