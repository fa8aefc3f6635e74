package catalog

import "orrerygo/pkg/model"

// DefaultBodies returns the built-in solar system. Orbit and rotation speeds
// are display coefficients tuned for a watchable scene, not physical rates;
// only their ordering mirrors reality (inner planets orbit faster).
func DefaultBodies() []model.Body {
	return []model.Body{
		{
			ID:   "sun",
			Kind: model.KindStar,
			Name: model.LocalizedText{Default: "Sun", Alternate: "Sonne"},
			Description: model.LocalizedText{
				Default:   "The Sun is our very own star. It is a giant ball of glowing hot gas that gives us light and warmth every day.",
				Alternate: "Die Sonne ist unser eigener Stern. Sie ist eine riesige Kugel aus glühend heißem Gas, die uns jeden Tag Licht und Wärme schenkt.",
			},
			Facts: model.LocalizedList{
				Default: []string{
					"The Sun is so big that about one million Earths could fit inside it",
					"Light from the Sun reaches Earth in about eight minutes",
					"The Sun is around 4.6 billion years old",
					"Its surface is about 5,500 degrees Celsius",
				},
				Alternate: []string{
					"Die Sonne ist so groß, dass ungefähr eine Million Erden hineinpassen würden",
					"Das Licht der Sonne braucht etwa acht Minuten bis zur Erde",
					"Die Sonne ist rund 4,6 Milliarden Jahre alt",
					"Ihre Oberfläche ist etwa 5.500 Grad Celsius heiß",
				},
			},
			Color:         "#FDB813",
			Texture:       "textures/sun.jpg",
			Scale:         5.0,
			OrbitSpeed:    0,
			RotationSpeed: 0.1,
			Distance:      0,
		},
		{
			ID:   "mercury",
			Kind: model.KindPlanet,
			Name: model.LocalizedText{Default: "Mercury", Alternate: "Merkur"},
			Description: model.LocalizedText{
				Default:   "Mercury is the smallest planet and the closest one to the Sun. It races around the Sun faster than any other planet.",
				Alternate: "Merkur ist der kleinste Planet und der Sonne am nächsten. Er saust schneller um die Sonne als jeder andere Planet.",
			},
			Facts: model.LocalizedList{
				Default: []string{
					"A year on Mercury lasts only 88 Earth days",
					"Mercury has no moons at all",
					"Days are boiling hot and nights are freezing cold",
				},
				Alternate: []string{
					"Ein Jahr auf dem Merkur dauert nur 88 Erdentage",
					"Merkur hat überhaupt keine Monde",
					"Die Tage sind kochend heiß und die Nächte eiskalt",
				},
			},
			Color:         "#8C8C8C",
			Texture:       "textures/mercury.jpg",
			Scale:         0.4,
			OrbitSpeed:    4.15,
			RotationSpeed: 0.02,
			Distance:      10,
		},
		{
			ID:   "venus",
			Kind: model.KindPlanet,
			Name: model.LocalizedText{Default: "Venus", Alternate: "Venus"},
			Description: model.LocalizedText{
				Default:   "Venus is the hottest planet, wrapped in thick golden clouds. It shines so brightly we can often see it from Earth in the evening sky.",
				Alternate: "Die Venus ist der heißeste Planet und in dichte goldene Wolken gehüllt. Sie leuchtet so hell, dass wir sie abends oft am Himmel sehen können.",
			},
			Facts: model.LocalizedList{
				Default: []string{
					"Venus spins backwards compared to most planets",
					"A day on Venus is longer than its year",
					"Its clouds are made of acid, not water",
				},
				Alternate: []string{
					"Die Venus dreht sich andersherum als die meisten Planeten",
					"Ein Tag auf der Venus ist länger als ihr Jahr",
					"Ihre Wolken bestehen aus Säure, nicht aus Wasser",
				},
			},
			Color:         "#E6C87A",
			Texture:       "textures/venus.jpg",
			Scale:         0.9,
			OrbitSpeed:    1.62,
			RotationSpeed: 0.01,
			Distance:      15,
		},
		{
			ID:   "earth",
			Kind: model.KindPlanet,
			Name: model.LocalizedText{Default: "Earth", Alternate: "Erde"},
			Description: model.LocalizedText{
				Default:   "Earth is our home, the blue planet. It is the only place we know where plants, animals and people live.",
				Alternate: "Die Erde ist unser Zuhause, der blaue Planet. Sie ist der einzige Ort, den wir kennen, wo Pflanzen, Tiere und Menschen leben.",
			},
			Facts: model.LocalizedList{
				Default: []string{
					"More than two thirds of Earth is covered by water",
					"Earth has one moon that pulls the ocean tides",
					"Our planet travels around the Sun at about 30 kilometers per second",
					"Earth is the only planet not named after a god",
				},
				Alternate: []string{
					"Mehr als zwei Drittel der Erde sind mit Wasser bedeckt",
					"Die Erde hat einen Mond, der Ebbe und Flut bewegt",
					"Unser Planet fliegt mit etwa 30 Kilometern pro Sekunde um die Sonne",
					"Die Erde ist der einzige Planet, der nicht nach einem Gott benannt ist",
				},
			},
			Color:         "#4F94CD",
			Texture:       "textures/earth.jpg",
			Scale:         1.0,
			OrbitSpeed:    1.0,
			RotationSpeed: 0.5,
			Distance:      20,
		},
		{
			ID:   "mars",
			Kind: model.KindPlanet,
			Name: model.LocalizedText{Default: "Mars", Alternate: "Mars"},
			Description: model.LocalizedText{
				Default:   "Mars is the red planet, covered in rusty dust. Robots from Earth are exploring it right now, looking for traces of water.",
				Alternate: "Der Mars ist der rote Planet, bedeckt mit rostigem Staub. Roboter von der Erde erkunden ihn gerade und suchen nach Spuren von Wasser.",
			},
			Facts: model.LocalizedList{
				Default: []string{
					"Mars has the tallest volcano in the solar system",
					"It has two tiny moons called Phobos and Deimos",
					"Dust storms on Mars can cover the whole planet",
				},
				Alternate: []string{
					"Auf dem Mars steht der höchste Vulkan im Sonnensystem",
					"Er hat zwei winzige Monde namens Phobos und Deimos",
					"Staubstürme auf dem Mars können den ganzen Planeten bedecken",
				},
			},
			Color:         "#C1440E",
			Texture:       "textures/mars.jpg",
			Scale:         0.5,
			OrbitSpeed:    0.53,
			RotationSpeed: 0.48,
			Distance:      25,
		},
		{
			ID:   "jupiter",
			Kind: model.KindPlanet,
			Name: model.LocalizedText{Default: "Jupiter", Alternate: "Jupiter"},
			Description: model.LocalizedText{
				Default:   "Jupiter is the biggest planet of all, a giant made of swirling gas. Its famous red spot is a storm larger than the whole Earth.",
				Alternate: "Jupiter ist der allergrößte Planet, ein Riese aus wirbelndem Gas. Sein berühmter roter Fleck ist ein Sturm, der größer ist als die ganze Erde.",
			},
			Facts: model.LocalizedList{
				Default: []string{
					"Jupiter has more than 90 moons",
					"It spins so fast that a day lasts only ten hours",
					"The Great Red Spot has been storming for hundreds of years",
				},
				Alternate: []string{
					"Jupiter hat mehr als 90 Monde",
					"Er dreht sich so schnell, dass ein Tag nur zehn Stunden dauert",
					"Der Große Rote Fleck stürmt schon seit Hunderten von Jahren",
				},
			},
			Color:         "#C88B3A",
			Texture:       "textures/jupiter.jpg",
			Scale:         2.5,
			OrbitSpeed:    0.084,
			RotationSpeed: 1.2,
			Distance:      33,
		},
		{
			ID:   "saturn",
			Kind: model.KindPlanet,
			Name: model.LocalizedText{Default: "Saturn", Alternate: "Saturn"},
			Description: model.LocalizedText{
				Default:   "Saturn is the planet with the beautiful rings. The rings are made of billions of pieces of ice and rock dancing around it.",
				Alternate: "Saturn ist der Planet mit den wunderschönen Ringen. Die Ringe bestehen aus Milliarden von Eis- und Gesteinsstückchen, die um ihn tanzen.",
			},
			Facts: model.LocalizedList{
				Default: []string{
					"Saturn is so light it could float in a giant bathtub",
					"Its rings are hundreds of thousands of kilometers wide but very thin",
					"Saturn's moon Titan has rivers and lakes of liquid gas",
				},
				Alternate: []string{
					"Saturn ist so leicht, dass er in einer riesigen Badewanne schwimmen könnte",
					"Seine Ringe sind Hunderttausende Kilometer breit, aber sehr dünn",
					"Saturns Mond Titan hat Flüsse und Seen aus flüssigem Gas",
				},
			},
			Color:         "#E3D9B0",
			Texture:       "textures/saturn.jpg",
			Scale:         2.2,
			OrbitSpeed:    0.034,
			RotationSpeed: 1.1,
			Distance:      40,
		},
		{
			ID:   "uranus",
			Kind: model.KindPlanet,
			Name: model.LocalizedText{Default: "Uranus", Alternate: "Uranus"},
			Description: model.LocalizedText{
				Default:   "Uranus is a pale blue ice giant that rolls around the Sun lying on its side, like a ball rolling along the ground.",
				Alternate: "Uranus ist ein blassblauer Eisriese, der auf der Seite liegend um die Sonne rollt, wie ein Ball, der über den Boden rollt.",
			},
			Facts: model.LocalizedList{
				Default: []string{
					"Uranus was the first planet discovered with a telescope",
					"One trip around the Sun takes 84 Earth years",
					"It smells like rotten eggs because of its gases",
				},
				Alternate: []string{
					"Uranus war der erste Planet, der mit einem Teleskop entdeckt wurde",
					"Eine Reise um die Sonne dauert 84 Erdenjahre",
					"Wegen seiner Gase riecht er wie faule Eier",
				},
			},
			Color:         "#9BD4D6",
			Texture:       "textures/uranus.jpg",
			Scale:         1.5,
			OrbitSpeed:    0.012,
			RotationSpeed: 0.7,
			Distance:      46,
		},
		{
			ID:   "neptune",
			Kind: model.KindPlanet,
			Name: model.LocalizedText{Default: "Neptune", Alternate: "Neptun"},
			Description: model.LocalizedText{
				Default:   "Neptune is the deep blue planet farthest from the Sun. It is a cold, windy world at the very edge of our solar system.",
				Alternate: "Neptun ist der tiefblaue Planet, der am weitesten von der Sonne entfernt ist. Er ist eine kalte, stürmische Welt am Rand unseres Sonnensystems.",
			},
			Facts: model.LocalizedList{
				Default: []string{
					"Neptune has the fastest winds in the solar system",
					"It was found with math before anyone saw it",
					"One year on Neptune lasts 165 Earth years",
				},
				Alternate: []string{
					"Auf Neptun wehen die schnellsten Winde im Sonnensystem",
					"Er wurde mit Mathematik gefunden, bevor ihn jemand sah",
					"Ein Jahr auf Neptun dauert 165 Erdenjahre",
				},
			},
			Color:         "#3953A4",
			Texture:       "textures/neptune.jpg",
			Scale:         1.4,
			OrbitSpeed:    0.006,
			RotationSpeed: 0.75,
			Distance:      52,
		},
	}
}
