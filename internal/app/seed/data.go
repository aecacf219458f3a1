package seed

import "github.com/dalemusser/octofit/internal/domain/models"

type teamSeed struct {
	name        string
	description string
	members     []userSeed
}

type userSeed struct {
	name  string
	email string
}

var teamSeeds = []teamSeed{
	{
		name:        "Team Marvel",
		description: "Earth's Mightiest Heroes",
		members: []userSeed{
			{"Tony Stark (Iron Man)", "tony.stark@avengers.com"},
			{"Steve Rogers (Captain America)", "steve.rogers@avengers.com"},
			{"Natasha Romanoff (Black Widow)", "natasha.romanoff@avengers.com"},
			{"Bruce Banner (Hulk)", "bruce.banner@avengers.com"},
			{"Thor Odinson", "thor@asgard.com"},
		},
	},
	{
		name:        "Team DC",
		description: "Justice League",
		members: []userSeed{
			{"Bruce Wayne (Batman)", "bruce.wayne@wayneenterprises.com"},
			{"Clark Kent (Superman)", "clark.kent@dailyplanet.com"},
			{"Diana Prince (Wonder Woman)", "diana.prince@themyscira.com"},
			{"Barry Allen (The Flash)", "barry.allen@starlabs.com"},
			{"Arthur Curry (Aquaman)", "arthur.curry@atlantis.com"},
		},
	},
}

// ActivityTypes are the types the generator picks from.
var ActivityTypes = []string{
	"Running", "Cycling", "Swimming", "Weight Training",
	"Boxing", "Yoga", "CrossFit", "HIIT",
}

// distanceTypes get a distance in km; the rest leave it nil.
var distanceTypes = map[string]bool{"Running": true, "Cycling": true, "Swimming": true}

func reps(n int) *int { return &n }

func workoutSeeds() []models.Workout {
	return []models.Workout{
		{
			Name:        "Super Soldier Training",
			Description: "Captain America inspired full body workout",
			Difficulty:  "Advanced",
			Duration:    60,
			Category:    "Strength",
			Exercises: []models.Exercise{
				{Name: "Push-ups", Sets: 5, Reps: reps(20)},
				{Name: "Pull-ups", Sets: 4, Reps: reps(15)},
				{Name: "Squats", Sets: 4, Reps: reps(20)},
				{Name: "Planks", Sets: 3, Duration: "60s"},
			},
		},
		{
			Name:        "Asgardian Power Routine",
			Description: "Thor's legendary strength training",
			Difficulty:  "Advanced",
			Duration:    75,
			Category:    "Power",
			Exercises: []models.Exercise{
				{Name: "Deadlifts", Sets: 5, Reps: reps(8)},
				{Name: "Hammer Curls", Sets: 4, Reps: reps(12)},
				{Name: "Battle Ropes", Sets: 3, Duration: "45s"},
				{Name: "Box Jumps", Sets: 4, Reps: reps(15)},
			},
		},
		{
			Name:        "Speed Force Training",
			Description: "Flash inspired cardio and agility workout",
			Difficulty:  "Intermediate",
			Duration:    45,
			Category:    "Cardio",
			Exercises: []models.Exercise{
				{Name: "Sprint Intervals", Sets: 8, Duration: "30s"},
				{Name: "Burpees", Sets: 4, Reps: reps(15)},
				{Name: "Jump Rope", Sets: 3, Duration: "2min"},
				{Name: "Mountain Climbers", Sets: 3, Reps: reps(30)},
			},
		},
		{
			Name:        "Amazonian Warrior Workout",
			Description: "Wonder Woman's combat training routine",
			Difficulty:  "Advanced",
			Duration:    60,
			Category:    "Combat",
			Exercises: []models.Exercise{
				{Name: "Sword Swings", Sets: 4, Reps: reps(20)},
				{Name: "Shield Push-ups", Sets: 4, Reps: reps(15)},
				{Name: "Lasso Spins", Sets: 3, Duration: "45s"},
				{Name: "High Kicks", Sets: 4, Reps: reps(20)},
			},
		},
		{
			Name:        "Dark Knight Conditioning",
			Description: "Batman's stealth and strength program",
			Difficulty:  "Advanced",
			Duration:    90,
			Category:    "Mixed",
			Exercises: []models.Exercise{
				{Name: "Ninja Rolls", Sets: 3, Reps: reps(10)},
				{Name: "Rope Climbing", Sets: 4, Reps: reps(5)},
				{Name: "Batarang Throws", Sets: 3, Reps: reps(30)},
				{Name: "Shadow Boxing", Sets: 5, Duration: "3min"},
			},
		},
		{
			Name:        "Atlantean Swim Training",
			Description: "Aquaman's underwater fitness routine",
			Difficulty:  "Intermediate",
			Duration:    50,
			Category:    "Swimming",
			Exercises: []models.Exercise{
				{Name: "Freestyle Laps", Sets: 8, Reps: reps(4)},
				{Name: "Underwater Sprints", Sets: 5, Reps: reps(50)},
				{Name: "Treading Water", Sets: 3, Duration: "5min"},
				{Name: "Dolphin Kicks", Sets: 4, Reps: reps(25)},
			},
		},
		{
			Name:        "Arc Reactor Endurance",
			Description: "Iron Man's high-tech cardio routine",
			Difficulty:  "Intermediate",
			Duration:    40,
			Category:    "Endurance",
			Exercises: []models.Exercise{
				{Name: "Treadmill Intervals", Sets: 6, Duration: "5min"},
				{Name: "Cycling", Sets: 1, Duration: "20min"},
				{Name: "Rowing", Sets: 3, Duration: "5min"},
			},
		},
		{
			Name:        "Hulk Smash Circuit",
			Description: "Bruce Banner's anger management through exercise",
			Difficulty:  "Beginner",
			Duration:    30,
			Category:    "Circuit",
			Exercises: []models.Exercise{
				{Name: "Medicine Ball Slams", Sets: 4, Reps: reps(15)},
				{Name: "Tire Flips", Sets: 3, Reps: reps(10)},
				{Name: "Punching Bag", Sets: 5, Duration: "2min"},
				{Name: "Jump Squats", Sets: 3, Reps: reps(15)},
			},
		},
	}
}
