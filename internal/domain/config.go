package domain

// VehicleConfig is one vehicle instance under analysis: a profile plus the
// parcel and worker assumptions applied to it. PayloadKg is a scalar pick
// from the profile's rated range.
type VehicleConfig struct {
	Profile   VehicleProfile
	Parcel    ParcelDimensions
	Params    OperationParameters
	PayloadKg float64
}

// NewVehicleConfig returns a fresh configuration with every field at the
// defaults for the given profile. Changing a vehicle's type must go through
// this constructor: the whole config is replaced, so no custom geometry or
// parameters from the previous type can survive the switch.
func NewVehicleConfig(profile VehicleProfile) VehicleConfig {
	return VehicleConfig{
		Profile:   profile,
		Parcel:    DefaultParcelDimensions(),
		Params:    DefaultOperationParameters(),
		PayloadKg: profile.Payload.MinKg,
	}
}

// Validate checks the parts of the config the estimation formulas divide by
// or floor against.
func (c VehicleConfig) Validate() error {
	if err := c.Parcel.Validate(); err != nil {
		return err
	}
	return c.Params.Validate()
}
