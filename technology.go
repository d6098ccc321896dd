package battery

// Technology is the battery chemistry reported by the OS.
type Technology uint8

const (
	TechnologyUnknown Technology = iota
	LithiumIon
	LeadAcid
	LithiumPolymer
	NickelMetalHydride
	NickelCadmium
	NickelZinc
	LithiumIronPhosphate
	RechargeableAlkalineManganese
)

var technologyNames = [...]string{
	"unknown",
	"lithium-ion",
	"lead-acid",
	"lithium-polymer",
	"nickel-metal-hydride",
	"nickel-cadmium",
	"nickel-zinc",
	"lithium-iron-phosphate",
	"rechargeable-alkaline-manganese",
}

func (t Technology) String() string {
	if int(t) >= len(technologyNames) {
		return technologyNames[TechnologyUnknown]
	}

	return technologyNames[t]
}

// ParseTechnology maps an OS-reported technology string to a Technology.
func ParseTechnology(s string) Technology {
	switch s {
	case "Li-ion", "LION", "lithium-ion":
		return LithiumIon
	case "Pb", "PbAc", "lead-acid":
		return LeadAcid
	case "Li-poly", "LiP", "lithium-polymer":
		return LithiumPolymer
	case "NiMH", "nickel-metal-hydride":
		return NickelMetalHydride
	case "NiCd", "nickel-cadmium":
		return NickelCadmium
	case "NiZn", "nickel-zinc":
		return NickelZinc
	case "LiFe", "LiFePO4", "lithium-iron-phosphate":
		return LithiumIronPhosphate
	case "RAM", "rechargeable-alkaline-manganese":
		return RechargeableAlkalineManganese
	default:
		return TechnologyUnknown
	}
}
