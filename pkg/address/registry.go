package address

// Factory produces an empty Address variant for a country.
type Factory func() Address

// factories maps countries to their specialized Address variants. Countries
// without an entry fall back to Generic. Populate at startup via Register;
// the map is not synchronized.
var factories = map[Country]Factory{}

func init() {
	Register(CountryUnitedStates, func() Address { return NewUnitedStates() })
}

// Register installs a specialized Address factory for a country, replacing
// any previous registration.
func Register(country Country, factory Factory) {
	factories[country] = factory
}

// factoryFor resolves the factory for a country, defaulting to Generic.
func factoryFor(country Country) Factory {
	if f, ok := factories[country]; ok {
		return f
	}
	return func() Address { return NewGeneric(country) }
}
