package content

import "github.com/Dhruv5290/stay/internal/models"

// Default returns the built-in listing used when no content file is
// configured.
func Default() *Listing {
	return &Listing{
		Name:    "The Juniper House",
		Tagline: "A quiet homestay between the hills and the harbour",
		About: "A restored stone farmhouse with five guest rooms, a shared " +
			"kitchen that smells of bread most mornings, and a terrace " +
			"looking down the valley. Walkable trails start at the gate; " +
			"the harbour town is twenty minutes by bicycle.",
		Rooms: []models.Room{
			{
				Name:        "Garden Room",
				Description: "Ground floor, opens onto the herb garden. Quiet and cool in summer.",
				Price:       "€68 / night",
				Capacity:    2,
				Amenities:   []string{"Queen bed", "Garden access", "Ensuite"},
			},
			{
				Name:        "Harbour View",
				Description: "Top floor corner room with the long view down to the water.",
				Price:       "€84 / night",
				Capacity:    2,
				Amenities:   []string{"King bed", "Balcony", "Ensuite"},
			},
			{
				Name:        "The Loft",
				Description: "Under the beams. Sloped ceilings, skylight over the bed.",
				Price:       "€72 / night",
				Capacity:    3,
				Amenities:   []string{"Double + single", "Skylight", "Shared bath"},
			},
			{
				Name:        "Juniper Suite",
				Description: "Two connected rooms with a small sitting area and wood stove.",
				Price:       "€110 / night",
				Capacity:    4,
				Amenities:   []string{"Two doubles", "Wood stove", "Ensuite", "Kitchenette"},
			},
			{
				Name:        "The Bothy",
				Description: "Separate single-room cottage at the edge of the orchard.",
				Price:       "€95 / night",
				Capacity:    2,
				Amenities:   []string{"Queen bed", "Private entrance", "Orchard view"},
			},
		},
		Gallery: []models.Photo{
			{
				Title:   "The terrace at dusk",
				Caption: "Long tables, longer dinners.",
				Art: []string{
					`   ~  *   .    *  ~   `,
					` _/\________________  `,
					` |  []  []  []  []  | `,
					` |__________________| `,
					`   ||  ~~~~~~~~  ||   `,
				},
			},
			{
				Title:   "Morning in the kitchen",
				Caption: "Bread goes in at seven.",
				Art: []string{
					`  _______________     `,
					` | (  ) |  ___  |     `,
					` |______| |[_]| | o o `,
					` |  ==  | |___| |_|_| `,
					` |______|_______|     `,
				},
			},
			{
				Title:   "The orchard path",
				Caption: "Apples in October, blossom in May.",
				Art: []string{
					`   &&&    &&&   &&&   `,
					`  &&&&&  &&&&& &&&&&  `,
					`   |||    |||   |||   `,
					` ..:::....:::...:::.. `,
					` ~~~~ path ~~~~~~~~~~ `,
				},
			},
			{
				Title:   "Harbour at low tide",
				Caption: "Twenty minutes downhill by bicycle.",
				Art: []string{
					`        |    |        `,
					`       )_)  )_)       `,
					`      )___))___)      `,
					` ~~~~~~\____/~~~~~~~~ `,
					`  ~~~ ~~~ ~~~~ ~~~    `,
				},
			},
			{
				Title:   "Winter, wood stove lit",
				Caption: "The suite stays warm all night.",
				Art: []string{
					`  _____________       `,
					` |  ___   (~)  |      `,
					` | |   |  |_|  |      `,
					` | |___| /___\ |      `,
					` |_____________|      `,
				},
			},
			{
				Title:   "Trailhead at the gate",
				Caption: "Three marked loops, the long one is worth it.",
				Art: []string{
					`      /\      /\      `,
					`  /\ /  \ /\ /  \     `,
					` /  \    /  \    \    `,
					` ....''..''..''....   `,
					`  ->  trail  ->       `,
				},
			},
		},
		Testimonials: []models.Testimonial{
			{
				Author:   "Maren",
				Location: "Oslo",
				Quote:    "We came for two nights and stayed five. The terrace dinners are the whole point.",
				Rating:   5,
			},
			{
				Author:   "Tomás",
				Location: "Porto",
				Quote:    "Quietest sleep I've had in years. The Bothy is perfect if you want your own door.",
				Rating:   5,
			},
			{
				Author:   "Ailsa",
				Location: "Glasgow",
				Quote:    "Great base for walking. They dried our boots by the stove without being asked.",
				Rating:   4,
			},
			{
				Author:   "Jun",
				Location: "Seoul",
				Quote:    "The harbour ride at sunrise alone is worth the trip.",
				Rating:   5,
			},
		},
		Contact: models.Contact{
			Phone:   "+351 910 000 000",
			Email:   "hello@juniperhouse.example",
			Address: "Estrada do Vale 12, Serra Alta",
		},
	}
}
