package questions

// DefaultCatalog returns the trivia questions the server ships with. The
// quiz round cap must stay at or below this size so sampling never runs out
// mid-game.
func DefaultCatalog() []Entry {
	return []Entry{
		{Question: "What is the capital of France?", Answer: "Paris"},
		{Question: "Which planet is known as the Red Planet?", Answer: "Mars"},
		{Question: "Which country is called the land of a thousand lakes?", Answer: "Finland"},
		{Question: "What is the largest ocean on Earth?", Answer: "Pacific"},
		{Question: "Who painted the Mona Lisa?", Answer: "Leonardo da Vinci"},
		{Question: "What is the chemical symbol for gold?", Answer: "Au"},
		{Question: "How many continents are there?", Answer: "7"},
		{Question: "What is the longest river in the world?", Answer: "Nile"},
		{Question: "In which city is the Colosseum located?", Answer: "Rome"},
		{Question: "What is the smallest prime number?", Answer: "2"},
		{Question: "Which gas do plants absorb from the atmosphere?", Answer: "Carbon dioxide"},
		{Question: "What is the tallest mountain on Earth?", Answer: "Everest"},
	}
}
