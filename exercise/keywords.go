package exercise

// keywordMapping binds a group of common exercise-name keywords to one
// category/subtype pair. The table is checked only after the lookup table
// fails to produce a confident match.
type keywordMapping struct {
	Keywords        []string
	Category        uint16
	CategorySubtype uint16
	ExerciseName    string
}

// Order matters: on equal similarity the first entry wins.
var keywordMappings = []keywordMapping{
	// Bench press
	{Keywords: []string{"bench press", "chest press"}, Category: 0, CategorySubtype: 1, ExerciseName: "barbellBenchPress"},
	{Keywords: []string{"dumbbell bench", "db bench"}, Category: 0, CategorySubtype: 6, ExerciseName: "dumbbellBenchPress"},
	{Keywords: []string{"incline bench"}, Category: 0, CategorySubtype: 8, ExerciseName: "inclineBarbellBenchPress"},
	{Keywords: []string{"incline dumbbell"}, Category: 0, CategorySubtype: 9, ExerciseName: "inclineDumbbellBenchPress"},

	// Squat
	{Keywords: []string{"squat"}, Category: 28, CategorySubtype: 61, ExerciseName: "squat"},
	{Keywords: []string{"back squat", "barbell squat"}, Category: 28, CategorySubtype: 6, ExerciseName: "barbellBackSquat"},
	{Keywords: []string{"front squat"}, Category: 28, CategorySubtype: 8, ExerciseName: "barbellFrontSquat"},
	{Keywords: []string{"goblet squat"}, Category: 28, CategorySubtype: 37, ExerciseName: "gobletSquat"},
	{Keywords: []string{"leg press"}, Category: 28, CategorySubtype: 0, ExerciseName: "legPress"},

	// Deadlift
	{Keywords: []string{"deadlift"}, Category: 8, CategorySubtype: 0, ExerciseName: "barbellDeadlift"},
	{Keywords: []string{"romanian deadlift", "rdl"}, Category: 8, CategorySubtype: 23, ExerciseName: "romanianDeadlift"},
	{Keywords: []string{"sumo deadlift"}, Category: 8, CategorySubtype: 15, ExerciseName: "sumoDeadlift"},
	{Keywords: []string{"trap bar deadlift"}, Category: 8, CategorySubtype: 17, ExerciseName: "trapBarDeadlift"},

	// Pull up / chin up
	{Keywords: []string{"pull up", "pullup"}, Category: 21, CategorySubtype: 38, ExerciseName: "pullUp"},
	{Keywords: []string{"chin up", "chinup"}, Category: 21, CategorySubtype: 39, ExerciseName: "chinUp"},
	{Keywords: []string{"lat pulldown", "lat pull"}, Category: 21, CategorySubtype: 13, ExerciseName: "latPulldown"},
	{Keywords: []string{"wide grip pull"}, Category: 21, CategorySubtype: 26, ExerciseName: "wideGripPullUp"},

	// Row
	{Keywords: []string{"barbell row", "bent over row"}, Category: 23, CategorySubtype: 0, ExerciseName: "barbellRow"},
	{Keywords: []string{"dumbbell row", "db row"}, Category: 23, CategorySubtype: 1, ExerciseName: "dumbbellRow"},
	{Keywords: []string{"cable row"}, Category: 23, CategorySubtype: 2, ExerciseName: "cableRow"},
	{Keywords: []string{"t-bar row"}, Category: 23, CategorySubtype: 3, ExerciseName: "tBarRow"},
	{Keywords: []string{"seated row"}, Category: 23, CategorySubtype: 4, ExerciseName: "seatedCableRow"},

	// Shoulder press
	{Keywords: []string{"shoulder press", "overhead press"}, Category: 24, CategorySubtype: 0, ExerciseName: "arnoldPress"},
	{Keywords: []string{"dumbbell shoulder", "db shoulder"}, Category: 24, CategorySubtype: 1, ExerciseName: "dumbbellShoulderPress"},
	{Keywords: []string{"military press"}, Category: 24, CategorySubtype: 2, ExerciseName: "militaryPress"},
	{Keywords: []string{"barbell shoulder"}, Category: 24, CategorySubtype: 3, ExerciseName: "barbellShoulderPress"},

	// Curl
	{Keywords: []string{"bicep curl", "biceps curl"}, Category: 7, CategorySubtype: 0, ExerciseName: "alternatingDumbbellCurl"},
	{Keywords: []string{"barbell curl"}, Category: 7, CategorySubtype: 1, ExerciseName: "barbellCurl"},
	{Keywords: []string{"dumbbell curl", "db curl"}, Category: 7, CategorySubtype: 2, ExerciseName: "dumbbellCurl"},
	{Keywords: []string{"hammer curl"}, Category: 7, CategorySubtype: 3, ExerciseName: "hammerCurl"},
	{Keywords: []string{"cable curl"}, Category: 7, CategorySubtype: 4, ExerciseName: "cableCurl"},

	// Triceps extension
	{Keywords: []string{"tricep extension", "triceps extension"}, Category: 30, CategorySubtype: 0, ExerciseName: "benchDip"},
	{Keywords: []string{"tricep pushdown", "triceps pushdown"}, Category: 30, CategorySubtype: 1, ExerciseName: "cableTricepsPushdown"},
	{Keywords: []string{"overhead tricep", "overhead triceps"}, Category: 30, CategorySubtype: 2, ExerciseName: "overheadTricepsExtension"},
	{Keywords: []string{"close grip bench"}, Category: 30, CategorySubtype: 3, ExerciseName: "closeGripBarbellBenchPress"},

	// Push up
	{Keywords: []string{"push up", "pushup"}, Category: 22, CategorySubtype: 0, ExerciseName: "chestPressWithBand"},
	{Keywords: []string{"incline push"}, Category: 22, CategorySubtype: 1, ExerciseName: "inclinePushUp"},
	{Keywords: []string{"decline push"}, Category: 22, CategorySubtype: 2, ExerciseName: "declinePushUp"},

	// Lunge
	{Keywords: []string{"lunge"}, Category: 17, CategorySubtype: 0, ExerciseName: "overheadLunge"},
	{Keywords: []string{"walking lunge"}, Category: 17, CategorySubtype: 1, ExerciseName: "walkingLunge"},
	{Keywords: []string{"reverse lunge"}, Category: 17, CategorySubtype: 2, ExerciseName: "reverseLunge"},
	{Keywords: []string{"split squat"}, Category: 17, CategorySubtype: 3, ExerciseName: "splitSquat"},

	// Leg curl
	{Keywords: []string{"leg curl"}, Category: 15, CategorySubtype: 0, ExerciseName: "legCurl"},
	{Keywords: []string{"lying leg curl"}, Category: 15, CategorySubtype: 1, ExerciseName: "lyingLegCurl"},
	{Keywords: []string{"seated leg curl"}, Category: 15, CategorySubtype: 2, ExerciseName: "seatedLegCurl"},

	// Calf raise
	{Keywords: []string{"calf raise"}, Category: 1, CategorySubtype: 18, ExerciseName: "standingCalfRaise"},
	{Keywords: []string{"seated calf"}, Category: 1, CategorySubtype: 6, ExerciseName: "seatedCalfRaise"},

	// Core
	{Keywords: []string{"plank"}, Category: 19, CategorySubtype: 0, ExerciseName: "45DegreePlank"},
	{Keywords: []string{"sit up"}, Category: 27, CategorySubtype: 0, ExerciseName: "alternatingSitUp"},
	{Keywords: []string{"crunch"}, Category: 6, CategorySubtype: 0, ExerciseName: "bicycleCrunch"},
	{Keywords: []string{"russian twist"}, Category: 5, CategorySubtype: 46, ExerciseName: "russianTwist"},

	// Hip raise
	{Keywords: []string{"hip raise", "hip thrust"}, Category: 10, CategorySubtype: 0, ExerciseName: "barbellHipThrustOnFloor"},
	{Keywords: []string{"glute bridge"}, Category: 10, CategorySubtype: 11, ExerciseName: "hipRaise"},

	// Shrug
	{Keywords: []string{"shrug"}, Category: 26, CategorySubtype: 0, ExerciseName: "barbellShrug"},
	{Keywords: []string{"dumbbell shrug"}, Category: 26, CategorySubtype: 1, ExerciseName: "dumbbellShrug"},

	// Lateral raise
	{Keywords: []string{"lateral raise"}, Category: 14, CategorySubtype: 0, ExerciseName: "45DegreeCableExternalRotation"},
	{Keywords: []string{"side raise"}, Category: 14, CategorySubtype: 1, ExerciseName: "alternatingLateralRaiseWithStaticHold"},

	// Flye
	{Keywords: []string{"fly", "flye"}, Category: 9, CategorySubtype: 2, ExerciseName: "dumbbellFlye"},
	{Keywords: []string{"pec fly"}, Category: 9, CategorySubtype: 0, ExerciseName: "cableCrossover"},

	// Burpee
	{Keywords: []string{"burpee"}, Category: 29, CategorySubtype: 0, ExerciseName: "burpee"},
}
