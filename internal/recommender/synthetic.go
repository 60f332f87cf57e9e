package recommender

import (
	"math/rand"

	"librosml-pc5/internal/models"
)

// Dataset sintético de demostración: se usa cuando los CSV no están o no se
// pueden leer, para que el servicio siempre levante con algo consultable.

const (
	syntheticSeed  = 42
	syntheticUsers = 100
	maxDemoRating  = 5
)

type demoBook struct {
	title  string
	author string
	year   string
}

// 38 títulos conocidos, en este orden fijo (el orden ES el id de fila).
var demoBooks = []demoBook{
	{"The Great Gatsby", "F. Scott Fitzgerald", "1925"},
	{"To Kill a Mockingbird", "Harper Lee", "1960"},
	{"1984", "George Orwell", "1949"},
	{"Pride and Prejudice", "Jane Austen", "1813"},
	{"The Catcher in the Rye", "J.D. Salinger", "1951"},
	{"Animal Farm", "George Orwell", "1945"},
	{"Lord of the Flies", "William Golding", "1954"},
	{"Brave New World", "Aldous Huxley", "1932"},
	{"The Hobbit", "J.R.R. Tolkien", "1937"},
	{"Harry Potter and the Sorcerer's Stone", "J.K. Rowling", "1997"},
	{"The Da Vinci Code", "Dan Brown", "2003"},
	{"The Alchemist", "Paulo Coelho", "1988"},
	{"The Little Prince", "Antoine de Saint-Exupéry", "1943"},
	{"Charlotte's Web", "E.B. White", "1952"},
	{"The Lion, the Witch and the Wardrobe", "C.S. Lewis", "1950"},
	{"The Lord of the Rings", "J.R.R. Tolkien", "1954"},
	{"Harry Potter and the Chamber of Secrets", "J.K. Rowling", "1998"},
	{"The Chronicles of Narnia", "C.S. Lewis", "1950"},
	{"Fahrenheit 451", "Ray Bradbury", "1953"},
	{"The Hunger Games", "Suzanne Collins", "2008"},
	{"Divergent", "Veronica Roth", "2011"},
	{"The Fault in Our Stars", "John Green", "2012"},
	{"Gone Girl", "Gillian Flynn", "2012"},
	{"The Girl with the Dragon Tattoo", "Stieg Larsson", "2005"},
	{"The Book Thief", "Markus Zusak", "2005"},
	{"Life of Pi", "Yann Martel", "2001"},
	{"The Kite Runner", "Khaled Hosseini", "2003"},
	{"The Help", "Kathryn Stockett", "2009"},
	{"The Lovely Bones", "Alice Sebold", "2002"},
	{"Water for Elephants", "Sara Gruen", "2006"},
	{"The Time Traveler's Wife", "Audrey Niffenegger", "2003"},
	{"The Secret Life of Bees", "Sue Monk Kidd", "2002"},
	{"Memoirs of a Geisha", "Arthur Golden", "1997"},
	{"The Curious Incident of the Dog in the Night-Time", "Mark Haddon", "2003"},
	{"The Perks of Being a Wallflower", "Stephen Chbosky", "1999"},
	{"Looking for Alaska", "John Green", "2005"},
	{"An Abundance of Katherines", "John Green", "2006"},
	{"Paper Towns", "John Green", "2008"},
}

// BuildSynthetic arma la matriz de demo con ratings aleatorios de semilla
// fija, así cada carga produce exactamente los mismos vecinos.
func BuildSynthetic() (*Matrix, map[string]models.Book) {
	rng := rand.New(rand.NewSource(syntheticSeed))

	titles := make([]string, len(demoBooks))
	meta := make(map[string]models.Book, len(demoBooks))
	for i, b := range demoBooks {
		titles[i] = b.title
		meta[b.title] = models.Book{
			Title:     b.title,
			Author:    b.author,
			Year:      b.year,
			Publisher: "Various Publishers",
		}
	}

	users := make([]int, syntheticUsers)
	for u := range users {
		users[u] = u
	}

	data := make([][]float64, len(titles))
	for i := range data {
		row := make([]float64, syntheticUsers)
		for j := range row {
			row[j] = float64(rng.Intn(maxDemoRating + 1))
		}
		data[i] = row
	}

	return NewMatrix(titles, users, data), meta
}
