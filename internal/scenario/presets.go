package scenario

import "asteroid-sim/internal/impact"

// BuiltIn returns predefined scenarios loosely modelled on well known events.
func BuiltIn() map[string]Scenario {
	return map[string]Scenario{
		"historical": {
			Name:        "Historical",
			Description: "Bodies sized like recorded impacts, placed inside the certain-impact boundary.",
			Asteroids: []Asteroid{
				{Name: "Chelyabinsk", Diameter: 20, Velocity: 19, Distance: 0, Type: impact.TypeStony, Note: "2013 airburst over the Urals"},
				{Name: "Tunguska", Diameter: 60, Velocity: 27, Distance: 0, Type: impact.TypeStony, Note: "1908 airburst over Siberia"},
				{Name: "Barringer", Diameter: 50, Velocity: 12.8, Distance: 0, Type: impact.TypeMetallic, Note: "Meteor Crater, Arizona"},
				{Name: "Chicxulub", Diameter: 10000, Velocity: 20, Distance: 0, Type: impact.TypeCarbonaceous, Note: "End-Cretaceous impactor"},
			},
		},
		"flyby": {
			Name:        "Flyby",
			Description: "One body swept through every distance band.",
			Asteroids: []Asteroid{
				{Name: "Inner band", Diameter: 340, Velocity: 7.4, Distance: 5000, Type: impact.TypeStony},
				{Name: "Decay band, hit", Diameter: 340, Velocity: 7.4, Distance: 20000, Type: impact.TypeStony},
				{Name: "Decay band, miss", Diameter: 340, Velocity: 7.4, Distance: 30000, Type: impact.TypeStony},
				{Name: "Outer band", Diameter: 340, Velocity: 7.4, Distance: 384400, Type: impact.TypeStony},
			},
		},
		"materials": {
			Name:        "Materials",
			Description: "Identical geometry across every material class.",
			Asteroids: []Asteroid{
				{Name: "Stony", Diameter: 500, Velocity: 20, Distance: 10000, Type: impact.TypeStony},
				{Name: "Metallic", Diameter: 500, Velocity: 20, Distance: 10000, Type: impact.TypeMetallic},
				{Name: "Icy", Diameter: 500, Velocity: 20, Distance: 10000, Type: impact.TypeIcy},
				{Name: "Carbonaceous", Diameter: 500, Velocity: 20, Distance: 10000, Type: impact.TypeCarbonaceous},
			},
		},
	}
}
