package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in mock catalog. It is built once per process.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = New(MockData())
	})
	return defaultCatalog
}

// Builtin is a Source serving the built-in mock catalog.
type Builtin struct{}

// Load returns the default catalog.
func (Builtin) Load(_ context.Context) (*Catalog, error) {
	return Default(), nil
}

func book(title, image string) Book {
	return Book{ID: uuid.New(), Title: title, ImageName: image}
}

func author(name, bio, image string) Author {
	return Author{ID: uuid.New(), Name: name, Bio: bio, ImageName: image}
}

func renter(name, image string) Renter {
	return Renter{ID: uuid.New(), Name: name, ImageName: image}
}

// MockData returns fresh mock content with newly generated identifiers.
func MockData() Data {
	books := []Book{
		book("The Great Gatsby", "x"),
		book("1984", "1984"),
		book("To Kill a Mockingbird", "y"),
		book("Pride and Prejudice", "pride_and_prejudice"),
		book("The Catcher in the Rye", "catcher_in_the_rye"),
		book("Moby Dick", "moby_dick"),
		book("War and Peace", "war_and_peace"),
		book("The Odyssey", "the_odyssey"),
		book("Brave New World", "brave_new_world"),
		book("The Picture of Dorian Gray", "dorian_gray"),
		book("The Hobbit", "the_hobbit"),
		book("Fahrenheit 451", "fahrenheit_451"),
	}

	return Data{
		Books: books,
		// Recently viewed entries are separate records in the feed, with their own IDs.
		RecentlyViewed: []Book{
			book("The Great Gatsby", "x"),
			book("1984", "1984"),
			book("To Kill a Mockingbird", "y"),
		},
		FavoriteGenres: []string{
			"Mystery & Thriller",
			"J.K. Rowling",
			"Dystopian",
			"Sarah J.",
		},
		TopRenters: []Renter{
			renter("Alice Johnson", "b"),
			renter("Bob Smith", "a"),
			renter("Diana Prince", "f"),
			renter("Charlie Brown", "c"),
		},
		Authors: []Author{
			author("Jane Austen", "An English novelist known for her novels about the British landed gentry at the end of the 18th century.", "AAA"),
			author("Mark Twain", "An American writer known for his novels The Adventures of Tom Sawyer and Adventures of Huckleberry Finn.", "ss"),
			author("George Orwell", "An English novelist famous for '1984' and 'Animal Farm'.", "george_orwell"),
			author("Virginia Woolf", "An English writer, considered one of the foremost modernists of the twentieth century.", "virginia_woolf"),
			author("F. Scott Fitzgerald", "An American novelist and short story writer, widely regarded as one of the greatest American writers of the 20th century.", "f_scott_fitzgerald"),
		},
		ExploreGenres: []string{"Crime", "Mystery", "Romance", "Science Fiction"},
		SwipeBooks: []CustomBook{
			{
				Title:            "The Enchanted Library",
				Author:           "Eleanor Smith",
				CoverImageName:   "The Enchanted Library",
				ShortDescription: "An adventurous journey through a magical world hidden in books.",
				LongDescription:  "In 'The Enchanted Library,' Eleanor Smith takes you through a world where every book holds a magical universe waiting to be explored.",
				Genres:           []string{"Fantasy", "Adventure", "Magic"},
			},
			{
				Title:            "Ocean's Whisper",
				Author:           "James Parker",
				CoverImageName:   "Ocean's Whisper",
				ShortDescription: "A thrilling dive into the mysteries of the deep ocean.",
				LongDescription:  "James Parker's 'Ocean's Whisper' takes readers on a mysterious and dangerous underwater adventure.",
				Genres:           []string{"Thriller", "Adventure"},
			},
			{
				Title:            "Stardust Dreams",
				Author:           "Clara Reed",
				CoverImageName:   "Stardust_Dreams",
				ShortDescription: "Exploring the beauty of the cosmos.",
				LongDescription:  "In 'Stardust Dreams,' Clara Reed explores space travel and human curiosity about the stars.",
				Genres:           []string{"Sci-Fi", "Drama"},
			},
		},
		Preferences: []Preference{
			{Tag: "Thriller", Icon: "book.fill"},
			{Tag: "Murder", Icon: "cross.fill"},
			{Tag: "Romance", Icon: "heart.fill"},
			{Tag: "Sci-Fi", Icon: "star.fill"},
			{Tag: "Fantasy", Icon: "star.fill"},
			{Tag: "Mystery", Icon: "magnifyingglass"},
			{Tag: "Horror", Icon: "flame.fill"},
			{Tag: "Adventure", Icon: "leaf.fill"},
			{Tag: "Historical", Icon: "clock.fill"},
			{Tag: "Non-Fiction", Icon: "book.closed.fill"},
		},
	}
}
