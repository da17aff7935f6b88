package catalog

// DefaultBookingURL is the public booking page every style links to.
const DefaultBookingURL = "https://calendly.com/zboobraids"

const depositNote = "$50.00 deposit required"

func option(name, price string) LengthOption {
	return LengthOption{Name: name, Price: price, Notes: depositNote}
}

var categories = []Category{
	{
		Name:    "Box Braids",
		Slug:    "box-braids",
		Summary: "Classic braided styles in a variety of lengths and sizes.",
		Subcategories: []Subcategory{
			{
				Name: "Box Braids",
				Slug: "box-braids",
				Items: []Item{
					{
						Name:        "XSmall Box Braids",
						Description: "5 options",
						LengthOptions: []LengthOption{
							option("Shoulder Length", "$300"),
							option("Bra Strap Length", "$350"),
							option("Waist Length", "$370"),
							option("Butt Length", "$400"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:        "Small Box Braids",
						Description: "5 options",
						Image:       "/Braids/Box-Braids/small.JPG",
						LengthOptions: []LengthOption{
							option("Shoulder Length", "$280"),
							option("Bra Strap Length", "$300"),
							option("Waist Length", "$320"),
							option("Butt Length", "$350"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:        "Smedium Box Braids",
						Description: "5 options",
						LengthOptions: []LengthOption{
							option("Shoulder Length", "$260"),
							option("Bra Strap Length", "$280"),
							option("Waist Length", "$300"),
							option("Butt Length", "$320"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:        "Medium Box Braids",
						Description: "5 options",
						Image:       "/Braids/Box-Braids/medium.jpg",
						LengthOptions: []LengthOption{
							option("Shoulder Length", "$240"),
							option("Bra Strap Length", "$260"),
							option("Waist Length", "$280"),
							option("Butt Length", "$300"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:        "Large Box Braids",
						Description: "5 options",
						LengthOptions: []LengthOption{
							option("Shoulder Length", "$130"),
							option("Bra Strap Length", "$150"),
							option("Waist Length", "$180"),
							option("Butt Length", "$200"),
						},
						Link: DefaultBookingURL,
					},
				},
			},
			{
				Name: "Regular Boho Bob Box Braids",
				Slug: "regular-boho-bob-box-braids",
				Items: []Item{
					{
						Name:          "Small Regular Boho Bob Box Braids",
						Description:   "1 OPTION",
						LengthOptions: []LengthOption{option("Shoulder Length", "$280")},
						Link:          DefaultBookingURL,
					},
					{
						Name:          "Smedium Regular Boho Bob Box Braids",
						Description:   "1 OPTION",
						LengthOptions: []LengthOption{option("Shoulder Length", "$260")},
						Link:          DefaultBookingURL,
					},
					{
						Name:          "Medium Regular Boho Bob Box Braids",
						Description:   "1 OPTION",
						LengthOptions: []LengthOption{option("Shoulder Length", "$240")},
						Link:          DefaultBookingURL,
					},
					{
						Name:          "Large Regular Boho Bob Box Braids",
						Description:   "1 OPTION",
						LengthOptions: []LengthOption{option("Shoulder Length", "$220")},
						Link:          DefaultBookingURL,
					},
				},
			},
		},
	},
	{
		Name:    "Knotless Styles",
		Slug:    "knotless",
		Summary: "Explore knotless braids, boho finishes, and knotless curls in one place.",
		Subcategories: []Subcategory{
			{
				Name: "Knotless Braids",
				Slug: "knotless-braids",
				Items: []Item{
					{
						Name:        "XSmall Knotless Braids",
						Description: "3 OPTIONS",
						LengthOptions: []LengthOption{
							option("Bra Length", "$330"),
							option("Waist Length", "$350"),
							option("Butt Length", "$400"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:        "Small Knotless Braids",
						Description: "3 OPTIONS",
						Image:       "/Braids/Knotless/small.jpg",
						LengthOptions: []LengthOption{
							option("Bra Length", "$300"),
							option("Waist Length", "$370"),
							option("Butt Length", "$380"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:        "Smedium Knotless Braids",
						Description: "3 OPTIONS",
						Image:       "/Braids/Knotless/Smedium.JPG",
						Images: []string{
							"/Braids/Knotless/Smedium.JPG",
							"/Braids/Knotless/Smedium1.JPG",
						},
						LengthOptions: []LengthOption{
							option("Bra Length", "$280"),
							option("Waist Length", "$320"),
							option("Butt Length", "$360"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:        "Medium Knotless Braids",
						Description: "3 OPTIONS",
						Image:       "/Braids/Knotless/Medium.JPG",
						LengthOptions: []LengthOption{
							option("Bra Length", "$260"),
							option("Waist Length", "$300"),
							option("Butt Length", "$330"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:        "Large Knotless Braids",
						Description: "3 OPTIONS",
						LengthOptions: []LengthOption{
							option("Bra Length", "$220"),
							option("Waist Length", "$250"),
							option("Butt Length", "$280"),
						},
						Link: DefaultBookingURL,
					},
				},
			},
			{
				Name:    "Knotless with Human Hair",
				Slug:    "knotless-with-human-hair",
				Summary: "Includes 4 bundles of human hair (Wet & Wavy, Deep Wave, Water Wave).",
				Items: []Item{
					{
						Name:         "Small Knotless with Human Hair",
						Description:  "Human Hair Included | 3 OPTIONS",
						HairTextures: []string{"Wet & Wavy", "Deep Wave", "Water Wave"},
						LengthOptions: []LengthOption{
							option("Bra Length", "$530"),
							option("Waist Length", "$560"),
							option("Butt Length", "$650"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:         "Smedium Knotless with Human Hair",
						Description:  "Human Hair Included | 3 OPTIONS",
						HairTextures: []string{"Wet & Wavy", "Deep Wave", "Water Wave"},
						LengthOptions: []LengthOption{
							option("Bra Length", "$500"),
							option("Waist Length", "$530"),
							option("Butt Length", "$580"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:         "Medium Knotless with Human Hair",
						Description:  "Human Hair Included | 3 OPTIONS",
						HairTextures: []string{"Wet & Wavy", "Deep Wave", "Water Wave"},
						LengthOptions: []LengthOption{
							option("Bra Length", "$460"),
							option("Waist Length", "$490"),
							option("Butt Length", "$520"),
						},
						Link: DefaultBookingURL,
					},
				},
			},
			{
				Name: "Knotless French Curl",
				Slug: "knotless-french-curl",
				Items: []Item{
					{
						Name:        "XSmall Knotless French Curl",
						Description: "2 OPTIONS",
						LengthOptions: []LengthOption{
							option("Waist Length", "$350"),
							option("Butt Length", "$400"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:        "Small Knotless French Curl",
						Description: "2 OPTIONS",
						Image:       "/Braids/Knotless/small-curl.JPEG",
						Images: []string{
							"/Braids/Knotless/small-curl.JPEG",
							"/Braids/Knotless/small1.JPG",
						},
						LengthOptions: []LengthOption{
							option("Waist Length", "$330"),
							option("Butt Length", "$380"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:        "Smedium Knotless French Curl",
						Description: "2 OPTIONS",
						LengthOptions: []LengthOption{
							option("Waist Length", "$300"),
							option("Butt Length", "$350"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:        "Medium Knotless French Curl",
						Description: "2 OPTIONS",
						LengthOptions: []LengthOption{
							option("Waist Length", "$280"),
							option("Butt Length", "$320"),
						},
						Link: DefaultBookingURL,
					},
				},
			},
			{
				Name: "Knotless Boho",
				Slug: "knotless-boho",
				Items: []Item{
					{
						Name:        "XSmall Knotless Boho",
						Description: "3 OPTIONS",
						LengthOptions: []LengthOption{
							option("Bra Strap Length", "$320"),
							option("Waist Length", "$400"),
							option("Butt Length", "$500"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:        "Small Knotless Boho",
						Description: "3 OPTIONS",
						Image:       "/Braids/Boho-Knotless/boho7.JPEG",
						LengthOptions: []LengthOption{
							option("Bra Strap Length", "$300"),
							option("Waist Length", "$320"),
							option("Butt Length", "$400"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:        "Smedium Knotless Boho",
						Description: "3 OPTIONS",
						Image:       "/Braids/Boho-Knotless/boho2.JPG",
						LengthOptions: []LengthOption{
							option("Bra Strap Length", "$280"),
							option("Waist Length", "$280"),
							option("Butt Length", "$350"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:        "Medium Knotless Boho",
						Description: "3 OPTIONS",
						Image:       "/Braids/Boho-Knotless/boho5.jpg",
						LengthOptions: []LengthOption{
							option("Bra Strap Length", "$260"),
							option("Waist Length", "$250"),
							option("Butt Length", "$320"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:        "Large Knotless Boho",
						Description: "3 OPTIONS",
						Image:       "/Braids/Boho-Knotless/boho4.JPG",
						LengthOptions: []LengthOption{
							option("Bra Strap Length", "$220"),
							option("Waist Length", "$230"),
							option("Butt Length", "$250"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:        "Jumbo Knotless Boho",
						Description: "3 OPTIONS",
						Image:       "/Braids/Boho-Knotless/boho3.JPG",
						LengthOptions: []LengthOption{
							option("Bra Strap Length", "$270"),
							option("Waist Length", "$300"),
							option("Butt Length", "$330"),
						},
						Link: DefaultBookingURL,
					},
				},
			},
			{
				Name: "Knotless Boho Twist",
				Slug: "knotless-boho-twist",
				Items: []Item{
					{
						Name:        "Small Knotless Boho Twist",
						Description: "3 OPTIONS",
						LengthOptions: []LengthOption{
							option("Bra Length", "$360"),
							option("Waist Length", "$380"),
							option("Butt Length", "$400"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:        "Smedium Knotless Boho Twist",
						Description: "3 OPTIONS",
						Image:       "/Braids/Knotless/Smedium-Boho.JPG",
						LengthOptions: []LengthOption{
							option("Bra Length", "$340"),
							option("Waist Length", "$360"),
							option("Butt Length", "$380"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:        "Medium Knotless Boho Twist",
						Description: "3 OPTIONS",
						LengthOptions: []LengthOption{
							option("Bra Length", "$320"),
							option("Waist Length", "$350"),
							option("Butt Length", "$360"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:        "Large Knotless Boho Twist",
						Description: "3 OPTIONS",
						LengthOptions: []LengthOption{
							option("Bra Length", "$280"),
							option("Waist Length", "$260"),
							option("Butt Length", "$300"),
						},
						Link: DefaultBookingURL,
					},
				},
			},
			{
				Name: "Knotless Bob Boho",
				Slug: "knotless-bob-boho",
				Items: []Item{
					{
						Name:          "XSmall Knotless Bob Boho",
						Description:   "1 OPTION",
						LengthOptions: []LengthOption{option("Shoulder Length", "$350")},
						Link:          DefaultBookingURL,
					},
					{
						Name:          "Small Knotless Bob Boho",
						Description:   "1 OPTION",
						LengthOptions: []LengthOption{option("Shoulder Length", "$300")},
						Link:          DefaultBookingURL,
					},
					{
						Name:          "Smedium Knotless Bob Boho",
						Description:   "1 OPTION",
						LengthOptions: []LengthOption{option("Shoulder Length", "$280")},
						Link:          DefaultBookingURL,
					},
					{
						Name:          "Medium Knotless Bob Boho",
						Description:   "1 OPTION",
						Image:         "/Braids/Knotless/knotless-bob.png",
						LengthOptions: []LengthOption{option("Shoulder Length", "$260")},
						Link:          DefaultBookingURL,
					},
				},
			},
			{
				Name: "Knotless Twist",
				Slug: "knotless-twist",
				Items: []Item{
					{
						Name:        "XSmall Knotless Twist",
						Description: "3 OPTIONS",
						LengthOptions: []LengthOption{
							option("Bra Length", "$250"),
							option("Waist Length", "$280"),
							option("Butt Length", "$330"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:        "Small Knotless Twist",
						Description: "3 OPTIONS",
						LengthOptions: []LengthOption{
							option("Bra Length", "$230"),
							option("Waist Length", "$260"),
							option("Butt Length", "$300"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:        "Smedium Knotless Twist",
						Description: "3 OPTIONS",
						LengthOptions: []LengthOption{
							option("Bra Length", "$200"),
							option("Waist Length", "$240"),
							option("Butt Length", "$280"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:        "Medium Knotless Twist",
						Description: "3 OPTIONS",
						LengthOptions: []LengthOption{
							option("Bra Length", "$180"),
							option("Waist Length", "$220"),
							option("Butt Length", "$260"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:        "Large Knotless Twist",
						Description: "3 OPTIONS",
						LengthOptions: []LengthOption{
							option("Bra Length", "$160"),
							option("Waist Length", "$200"),
							option("Butt Length", "$240"),
						},
						Link: DefaultBookingURL,
					},
				},
			},
		},
	},
	{
		Name:    "Twists",
		Slug:    "twists",
		Summary: "Discover island, boho, passion, and Senegalese twist variations in one place.",
		Subcategories: []Subcategory{
			{
				Name:    "Island Twist",
				Slug:    "island-twist",
				Summary: "Island-inspired twists featuring flowing curls and lightweight movement.",
				Items: []Item{
					{
						Name:        "Small Island Twist",
						Description: "3 OPTIONS",
						Image:       "/Braids/Island-Twist/Island2.JPG",
						LengthOptions: []LengthOption{
							option("Bra Length", "$360"),
							option("Waist Length", "$380"),
							option("Butt Length", "$400"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:        "Smedium Island Twist",
						Description: "3 OPTIONS",
						Image:       "/Braids/Island-Twist/Smedium.jpg",
						LengthOptions: []LengthOption{
							option("Bra Length", "$340"),
							option("Waist Length", "$360"),
							option("Butt Length", "$380"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:        "Medium Island Twist",
						Description: "3 OPTIONS",
						LengthOptions: []LengthOption{
							option("Bra Length", "$320"),
							option("Waist Length", "$350"),
							option("Butt Length", "$360"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:        "Large Island Twist",
						Description: "3 OPTIONS",
						LengthOptions: []LengthOption{
							option("Bra Length", "$280"),
							option("Waist Length", "$260"),
							option("Butt Length", "$300"),
						},
						Link: DefaultBookingURL,
					},
				},
			},
			{
				Name:    "Passion Twist",
				Slug:    "passion-twist",
				Summary: "Bouncy twists with effortless texture and movement.",
				Items: []Item{
					{
						Name:        "Small Passion Twist",
						Description: "2 OPTIONS",
						Image:       "/Braids/Passion-Twist/passion1.jpg",
						Images: []string{
							"/Braids/Passion-Twist/passion4.jpg",
							"/Braids/Passion-Twist/passion1.jpg",
						},
						LengthOptions: []LengthOption{
							option("Waist Length", "$260"),
							option("Butt Length", "$300"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:        "Large Passion Twist",
						Description: "2 OPTIONS",
						LengthOptions: []LengthOption{
							option("Waist Length", "$200"),
							option("Butt Length", "$220"),
						},
						Link: DefaultBookingURL,
					},
				},
			},
			{
				Name: "Spring Twist",
				Slug: "spring-twist",
				Items: []Item{
					{
						Name:        "Small Spring Twist",
						Description: "3 OPTIONS",
						LengthOptions: []LengthOption{
							option("Shoulder Length", "$220"),
							option("Bra Length", "$240"),
							option("Waist Length", "$280"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:        "Medium Spring Twist",
						Description: "3 OPTIONS",
						LengthOptions: []LengthOption{
							option("Shoulder Length", "$200"),
							option("Bra Length", "$220"),
							option("Waist Length", "$260"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:        "Large Spring Twist",
						Description: "3 OPTIONS",
						LengthOptions: []LengthOption{
							option("Shoulder Length", "$160"),
							option("Bra Length", "$180"),
							option("Waist Length", "$200"),
						},
						Link: DefaultBookingURL,
					},
				},
			},
			{
				Name: "Soft Twist",
				Slug: "soft-twist",
				Items: []Item{
					{
						Name:        "Small Soft Twist",
						Description: "3 OPTIONS",
						LengthOptions: []LengthOption{
							option("Shoulder Length", "$220"),
							option("Bra Strap Length", "$240"),
							option("Waist Length", "$280"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:        "Medium Soft Twist",
						Description: "3 OPTIONS",
						LengthOptions: []LengthOption{
							option("Shoulder Length", "$200"),
							option("Bra Strap Length", "$220"),
							option("Waist Length", "$260"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:        "Large Soft Twist",
						Description: "3 OPTIONS",
						LengthOptions: []LengthOption{
							option("Shoulder Length", "$160"),
							option("Bra Strap Length", "$180"),
							option("Waist Length", "$200"),
						},
						Link: DefaultBookingURL,
					},
				},
			},
			{
				Name: "Bomb Twist",
				Slug: "bomb-twist",
				Items: []Item{
					{
						Name:        "Small Bomb Twist",
						Description: "3 OPTIONS",
						LengthOptions: []LengthOption{
							option("Shoulder Length", "$220"),
							option("Bra Strap Length", "$240"),
							option("Waist Length", "$280"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:        "Medium Bomb Twist",
						Description: "3 OPTIONS",
						LengthOptions: []LengthOption{
							option("Shoulder Length", "$200"),
							option("Bra Length", "$220"),
							option("Waist Length", "$260"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:        "Large Bomb Twist",
						Description: "3 OPTIONS",
						LengthOptions: []LengthOption{
							option("Shoulder Length", "$160"),
							option("Bra Length", "$180"),
							option("Waist Length", "$200"),
						},
						Link: DefaultBookingURL,
					},
				},
			},
			{
				Name: "Natural Hair 2 Strand Twist",
				Slug: "natural-hair-2-strand-twist",
				Items: []Item{
					{
						Name:          "Small Natural Hair 2 Strand Twist",
						Description:   "1 OPTION",
						LengthOptions: []LengthOption{option("Small", "$200")},
						Link:          DefaultBookingURL,
					},
					{
						Name:          "Medium Natural Hair 2 Strand Twist",
						Description:   "1 OPTION",
						LengthOptions: []LengthOption{option("Medium", "$160")},
						Link:          DefaultBookingURL,
					},
				},
			},
		},
	},
	{
		Name:    "French Curl",
		Slug:    "french-curl",
		Summary: "Elegant French curl styles with natural texture and movement.",
		Subcategories: []Subcategory{
			{
				Name: "Regular French Curl",
				Slug: "regular-french-curl",
				Items: []Item{
					{
						Name:        "Small Regular French Curl",
						Description: "2 OPTIONS",
						LengthOptions: []LengthOption{
							option("Waist Length", "$320"),
							option("Butt Length", "$350"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:        "Smedium Regular French Curl",
						Description: "2 OPTIONS",
						LengthOptions: []LengthOption{
							option("Waist Length", "$300"),
							option("Butt Length", "$320"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:        "Medium Regular French Curl",
						Description: "2 OPTIONS",
						LengthOptions: []LengthOption{
							option("Waist Length", "$280"),
							option("Butt Length", "$260"),
						},
						Link: DefaultBookingURL,
					},
				},
			},
			{
				Name: "Knotless French Curl",
				Slug: "knotless-french-curl",
				Items: []Item{
					{
						Name:        "XSmall Knotless French Curl",
						Description: "2 OPTIONS",
						LengthOptions: []LengthOption{
							option("Waist Length", "$350"),
							option("Butt Length", "$400"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:        "Small Knotless French Curl",
						Description: "2 OPTIONS",
						LengthOptions: []LengthOption{
							option("Waist Length", "$330"),
							option("Butt Length", "$380"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:        "Smedium Knotless French Curl",
						Description: "2 OPTIONS",
						LengthOptions: []LengthOption{
							option("Waist Length", "$300"),
							option("Butt Length", "$350"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:        "Medium Knotless French Curl",
						Description: "2 OPTIONS",
						LengthOptions: []LengthOption{
							option("Waist Length", "$280"),
							option("Butt Length", "$320"),
						},
						Link: DefaultBookingURL,
					},
				},
			},
		},
	},
	{
		Name:    "Locs",
		Slug:    "locs",
		Summary: "Choose from soft locs, micro locs, and more textured loc styles.",
		Subcategories: []Subcategory{
			{
				Name: "Soft Locs",
				Slug: "soft-locs",
				Items: []Item{
					{
						Name:        "Small Soft Locs",
						Description: "2 OPTIONS",
						Image:       "/Braids/Soft-Locs/soft1.JPG",
						LengthOptions: []LengthOption{
							option("Waist Length", "$280"),
							option("Butt Length", "$300"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:        "Medium Soft Locs",
						Description: "2 OPTIONS",
						LengthOptions: []LengthOption{
							option("Waist Length", "$250"),
							option("Butt Length", "$280"),
						},
						Link: DefaultBookingURL,
					},
				},
			},
			{
				Name: "Boho Soft Locs",
				Slug: "boho-soft-locs",
				Items: []Item{
					{
						Name:        "Small Boho Soft Locs",
						Description: "2 OPTIONS",
						LengthOptions: []LengthOption{
							option("Waist Length", "$430"),
							option("Butt Length", "$500"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:        "Medium Boho Soft Locs",
						Description: "2 OPTIONS",
						LengthOptions: []LengthOption{
							option("Waist Length", "$350"),
							option("Butt Length", "$450"),
						},
						Link: DefaultBookingURL,
					},
				},
			},
			{
				Name:    "Bora Bora Locs",
				Slug:    "bora-bora-locs",
				Summary: "Hair included.",
				Items: []Item{
					{
						Name:        "Small Bora Bora Locs",
						Description: "Hair included | 3 OPTIONS",
						LengthOptions: []LengthOption{
							option("Shoulder Length", "$500"),
							option("Waist Length", "$650"),
							option("Butt Length", "$700"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:        "Medium Bora Bora Locs",
						Description: "Hair included | 3 OPTIONS",
						LengthOptions: []LengthOption{
							option("Shoulder Length", "$450"),
							option("Waist Length", "$550"),
							option("Butt Length", "$600"),
						},
						Link: DefaultBookingURL,
					},
				},
			},
		},
	},
	{
		Name:    "Crochet",
		Slug:    "crochet",
		Summary: "Quick-install crochet styles with lightweight versatility.",
		Items: []Item{
			{
				Name:          "Pre Looped",
				Description:   "1 OPTION",
				LengthOptions: []LengthOption{option("Pre Looped", "$120")},
				Link:          DefaultBookingURL,
			},
			{
				Name:          "Individual in the Front",
				Description:   "1 OPTION",
				LengthOptions: []LengthOption{option("Individual in the Front", "$150")},
				Link:          DefaultBookingURL,
			},
			{
				Name:          "Loose Hair",
				Description:   "1 OPTION",
				LengthOptions: []LengthOption{option("Loose Hair", "$130")},
				Link:          DefaultBookingURL,
			},
			{
				Name:          "Individual Entire Head",
				Description:   "1 OPTION",
				LengthOptions: []LengthOption{option("Individual Entire Head", "$180")},
				Link:          DefaultBookingURL,
			},
		},
	},
	{
		Name:    "Kids Braids",
		Slug:    "kids-braids",
		Summary: "Kid-friendly styles designed for comfort and protective wear.",
		Subcategories: []Subcategory{
			{
				Name: "Knotless Kids",
				Slug: "knotless-kids",
				Items: []Item{
					{
						Name:        "Small Knotless Kids",
						Description: "4 OPTIONS",
						Image:       "/Braids/Kids/kid2.JPG",
						LengthOptions: []LengthOption{
							option("Shoulder Length", "$180"),
							option("Bra Length", "$220"),
							option("Waist Length", "$250"),
							option("Butt Length", "$280"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:        "Smedium Knotless Kids",
						Description: "4 OPTIONS",
						LengthOptions: []LengthOption{
							option("Shoulder Length", "$160"),
							option("Bra Length", "$200"),
							option("Waist Length", "$240"),
							option("Butt Length", "$260"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:        "Medium Knotless Kids",
						Description: "4 OPTIONS",
						Image:       "/Braids/Kids/kid3.jpg",
						LengthOptions: []LengthOption{
							option("Shoulder Length", "$140"),
							option("Bra Length", "$180"),
							option("Waist Length", "$230"),
							option("Butt Length", "$250"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:        "Large Knotless Kids",
						Description: "4 OPTIONS",
						LengthOptions: []LengthOption{
							option("Shoulder Length", "$120"),
							option("Bra Length", "$140"),
							option("Waist Length", "$180"),
							option("Butt Length", "$220"),
						},
						Link: DefaultBookingURL,
					},
				},
			},
			{
				Name: "Box Braids Kids",
				Slug: "box-braids-kids",
				Items: []Item{
					{
						Name:        "Small Box Braids Kids",
						Description: "4 OPTIONS",
						Image:       "/Braids/Kids/kid1.JPG",
						LengthOptions: []LengthOption{
							option("Shoulder Length", "$180"),
							option("Bra Length", "$200"),
							option("Waist Length", "$230"),
							option("Butt Length", "$250"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:        "Smedium Box Braids Kids",
						Description: "4 OPTIONS",
						Image:       "/Braids/Kids/kid6.jpg",
						LengthOptions: []LengthOption{
							option("Shoulder Length", "$160"),
							option("Bra Length", "$180"),
							option("Waist Length", "$220"),
							option("Butt Length", "$260"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:        "Medium Box Braids Kids",
						Description: "4 OPTIONS",
						LengthOptions: []LengthOption{
							option("Shoulder Length", "$150"),
							option("Bra Length", "$160"),
							option("Waist Length", "$200"),
							option("Butt Length", "$240"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:        "Large Box Braids Kids",
						Description: "4 OPTIONS",
						LengthOptions: []LengthOption{
							option("Shoulder Length", "$120"),
							option("Bra Length", "$130"),
							option("Waist Length", "$150"),
							option("Butt Length", "$180"),
						},
						Link: DefaultBookingURL,
					},
				},
			},
			{
				Name: "Boho Box Braids Kids",
				Slug: "boho-box-braids-kids",
				Items: []Item{
					{
						Name:        "Small Boho Box Braids Kids",
						Description: "4 OPTIONS",
						LengthOptions: []LengthOption{
							option("Shoulder Length", "$220"),
							option("Bra Length", "$230"),
							option("Waist Length", "$250"),
							option("Butt Length", "$280"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:        "Smedium Boho Box Braids Kids",
						Description: "4 OPTIONS",
						LengthOptions: []LengthOption{
							option("Shoulder Length", "$200"),
							option("Bra Length", "$220"),
							option("Waist Length", "$230"),
							option("Butt Length", "$260"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:        "Medium Boho Box Braids Kids",
						Description: "4 OPTIONS",
						LengthOptions: []LengthOption{
							option("Shoulder Length", "$180"),
							option("Bra Length", "$200"),
							option("Waist Length", "$220"),
							option("Butt Length", "$240"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:        "Large Boho Box Braids Kids",
						Description: "4 OPTIONS",
						LengthOptions: []LengthOption{
							option("Shoulder Length", "$160"),
							option("Bra Length", "$180"),
							option("Waist Length", "$200"),
							option("Butt Length", "$220"),
						},
						Link: DefaultBookingURL,
					},
				},
			},
			{
				Name: "Knotless Boho Twist Kids",
				Slug: "knotless-boho-twist-kids",
				Items: []Item{
					{
						Name:        "Small Knotless Boho Twist Kids",
						Description: "3 OPTIONS",
						LengthOptions: []LengthOption{
							option("Bra Length", "$235"),
							option("Waist Length", "$260"),
							option("Butt Length", "$300"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:        "Smedium Knotless Boho Twist Kids",
						Description: "3 OPTIONS",
						LengthOptions: []LengthOption{
							option("Bra Length", "$215"),
							option("Waist Length", "$240"),
							option("Butt Length", "$280"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:        "Medium Knotless Boho Twist Kids",
						Description: "3 OPTIONS",
						LengthOptions: []LengthOption{
							option("Bra Length", "$200"),
							option("Waist Length", "$220"),
							option("Butt Length", "$260"),
						},
						Link: DefaultBookingURL,
					},
					{
						Name:        "Large Knotless Boho Twist Kids",
						Description: "3 OPTIONS",
						LengthOptions: []LengthOption{
							option("Bra Length", "$180"),
							option("Waist Length", "$200"),
							option("Butt Length", "$220"),
						},
						Link: DefaultBookingURL,
					},
				},
			},
		},
	},
}

// Categories returns the full service catalog.
func Categories() []Category {
	return categories
}

// GetCategory looks up a category by slug.
func GetCategory(slug string) (Category, bool) {
	for _, category := range categories {
		if category.Slug == slug {
			return category, true
		}
	}
	return Category{}, false
}

// GetSubcategory looks up a subcategory inside a specific category.
func GetSubcategory(categorySlug, subSlug string) (Subcategory, bool) {
	category, ok := GetCategory(categorySlug)
	if !ok {
		return Subcategory{}, false
	}
	for _, subcategory := range category.Subcategories {
		if subcategory.Slug == subSlug {
			return subcategory, true
		}
	}
	return Subcategory{}, false
}

// FindSubcategory searches all categories for a subcategory slug.
func FindSubcategory(subSlug string) (Category, Subcategory, bool) {
	for _, category := range categories {
		for _, subcategory := range category.Subcategories {
			if subcategory.Slug == subSlug {
				return category, subcategory, true
			}
		}
	}
	return Category{}, Subcategory{}, false
}
