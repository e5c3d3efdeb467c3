package inventory

import "github.com/autovoice/voice-showroom/internal/model"

func intp(v int) *int { return &v }

// seedCars returns the sample catalog loaded at startup.
func seedCars() []model.Car {
	return []model.Car{
		{
			ID:           "car-001",
			Make:         "Toyota",
			Model:        "Camry",
			Year:         2024,
			Price:        28999,
			Mileage:      5200,
			Color:        "Pearl White",
			FuelType:     "Hybrid",
			Transmission: "Automatic",
			Drivetrain:   "FWD",
			MPGCity:      intp(51),
			MPGHighway:   intp(53),
			Features:     []string{"Apple CarPlay", "Android Auto", "Adaptive Cruise Control", "Lane Departure Warning", "Heated Seats"},
			Description:  "The 2024 Toyota Camry Hybrid offers exceptional fuel economy with a refined driving experience. This vehicle combines reliability with modern technology.",
			ImageURL:     "https://images.unsplash.com/photo-1621007947382-bb3c3994e3fb?w=800&q=80",
			IsAvailable:  true,
		},
		{
			ID:           "car-002",
			Make:         "Honda",
			Model:        "CR-V",
			Year:         2024,
			Price:        34500,
			Mileage:      8900,
			Color:        "Sonic Gray",
			FuelType:     "Gasoline",
			Transmission: "CVT",
			Drivetrain:   "AWD",
			MPGCity:      intp(28),
			MPGHighway:   intp(34),
			Features:     []string{"Panoramic Sunroof", "Wireless Charging", "Blind Spot Monitoring", "Remote Start", "Power Liftgate"},
			Description:  "The Honda CR-V is a versatile compact SUV perfect for families. Spacious interior with excellent safety ratings.",
			ImageURL:     "https://images.unsplash.com/photo-1568844293986-8c7a5f451121?w=800&q=80",
			IsAvailable:  true,
		},
		{
			ID:           "car-003",
			Make:         "Tesla",
			Model:        "Model 3",
			Year:         2024,
			Price:        42990,
			Mileage:      2100,
			Color:        "Midnight Silver",
			FuelType:     "Electric",
			Transmission: "Single Speed",
			Drivetrain:   "RWD",
			MPGCity:      intp(138),
			MPGHighway:   intp(126),
			Features:     []string{"Autopilot", "15-inch Touchscreen", "Glass Roof", "Premium Audio", "Full Self-Driving Capable"},
			Description:  "Experience the future of driving with the Tesla Model 3. Zero emissions, instant acceleration, and cutting-edge technology.",
			ImageURL:     "https://images.unsplash.com/photo-1560958089-b8a1929cea89?w=800&q=80",
			IsAvailable:  true,
		},
		{
			ID:           "car-004",
			Make:         "Ford",
			Model:        "F-150",
			Year:         2023,
			Price:        52999,
			Mileage:      15600,
			Color:        "Rapid Red",
			FuelType:     "Gasoline",
			Transmission: "Automatic",
			Drivetrain:   "4WD",
			MPGCity:      intp(20),
			MPGHighway:   intp(24),
			Features:     []string{"Pro Power Onboard", "360-Degree Camera", "Trailer Backup Assist", "SYNC 4", "B&O Sound System"},
			Description:  "America's best-selling truck. The Ford F-150 combines power, capability, and modern technology for work or play.",
			ImageURL:     "https://images.unsplash.com/photo-1590656364826-5f13b8e5c7e0?w=800&q=80",
			IsAvailable:  true,
		},
		{
			ID:           "car-005",
			Make:         "BMW",
			Model:        "X5",
			Year:         2024,
			Price:        67500,
			Mileage:      4300,
			Color:        "Alpine White",
			FuelType:     "Gasoline",
			Transmission: "Automatic",
			Drivetrain:   "xDrive",
			MPGCity:      intp(21),
			MPGHighway:   intp(26),
			Features:     []string{"Gesture Control", "Harman Kardon Audio", "Soft-Close Doors", "Head-Up Display", "Parking Assistant Plus"},
			Description:  "The BMW X5 delivers driving pleasure with commanding presence. Luxurious interior with advanced driver assistance systems.",
			ImageURL:     "https://images.unsplash.com/photo-1556189250-72ba954cfc2b?w=800&q=80",
			IsAvailable:  true,
		},
		{
			ID:           "car-006",
			Make:         "Chevrolet",
			Model:        "Bolt EV",
			Year:         2024,
			Price:        27495,
			Mileage:      3200,
			Color:        "Bright Blue",
			FuelType:     "Electric",
			Transmission: "Single Speed",
			Drivetrain:   "FWD",
			MPGCity:      intp(131),
			MPGHighway:   intp(109),
			Features:     []string{"One Pedal Driving", "DC Fast Charging", "Regen on Demand", "10.2-inch Display", "Teen Driver Mode"},
			Description:  "Affordable electric driving with 259 miles of range. The Chevrolet Bolt EV makes going electric easy and practical.",
			ImageURL:     "https://images.unsplash.com/photo-1593941707882-a5bba14938c7?w=800&q=80",
			IsAvailable:  true,
		},
		{
			ID:           "car-007",
			Make:         "Mazda",
			Model:        "CX-5",
			Year:         2024,
			Price:        31150,
			Mileage:      6800,
			Color:        "Soul Red Crystal",
			FuelType:     "Gasoline",
			Transmission: "Automatic",
			Drivetrain:   "AWD",
			MPGCity:      intp(24),
			MPGHighway:   intp(30),
			Features:     []string{"Bose Audio", "Heads-Up Display", "Traffic Sign Recognition", "Ventilated Seats", "Adaptive Headlights"},
			Description:  "The Mazda CX-5 offers premium feel at a mainstream price. Sporty handling with upscale interior craftsmanship.",
			ImageURL:     "https://images.unsplash.com/photo-1612825173281-9a193378527e?w=800&q=80",
			IsAvailable:  true,
		},
		{
			ID:           "car-008",
			Make:         "Hyundai",
			Model:        "Tucson",
			Year:         2024,
			Price:        29750,
			Mileage:      7500,
			Color:        "Amazon Gray",
			FuelType:     "Hybrid",
			Transmission: "Automatic",
			Drivetrain:   "AWD",
			MPGCity:      intp(38),
			MPGHighway:   intp(38),
			Features:     []string{"Digital Key", "Remote Smart Parking", "Highway Drive Assist", "BlueLink Connected", "Wireless Apple CarPlay"},
			Description:  "The Hyundai Tucson Hybrid offers excellent fuel economy in a stylish package. Loaded with technology and comfort features.",
			ImageURL:     "https://images.unsplash.com/photo-1619767886558-efdc259cde1a?w=800&q=80",
			IsAvailable:  true,
		},
	}
}
