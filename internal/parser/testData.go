package parser

const goodreadsHeader = "Book Id,Title,Author,Author l-f,Additional Authors,ISBN,ISBN13,My Rating,Average Rating,Publisher,Binding,Number of Pages,Year Published,Original Publication Year,Date Read,Date Added,Bookshelves,Bookshelves with positions,Exclusive Shelf,My Review,Spoiler,Private Notes,Read Count,Owned Copies\n"

var (
	// row 1 rated without a date, row 2 unread, row 3 dated without a rating
	threeRowsExport string = goodreadsHeader +
		`1,Dune,Frank Herbert,"Herbert, Frank",,"=""0441013597""","=""9780441013593""",4,4.27,Ace Books,Paperback,604,2005,1965,,2021/01/02,,,read,,,,1,0` + "\n" +
		`2,Neuromancer,William Gibson,"Gibson, William",,"=""""","=""""",0,3.89,Ace,Paperback,271,2000,1984,,2021/01/03,to-read,to-read (#1),to-read,,,,0,0` + "\n" +
		`3,Pride and Prejudice,Jane Austen,"Austen, Jane",,"=""0141439513""","=""9780141439518""",0,4.29,Penguin,Paperback,279.0,2002,1813,2023/04/15,2021/01/04,classics,classics (#2),read,"Witty, sharp.",,Reread in summer,1,0` + "\n"

	bomExport string = "\ufeff" + goodreadsHeader +
		`1,Dune,Frank Herbert,"Herbert, Frank",,,,5,4.27,Ace Books,Paperback,604,2005,1965,2022/05/01,2021/01/02,,,read,,,,1,0` + "\n"

	missingColumnsExport string = "Title,Author,My Rating\nDune,Frank Herbert,5\n"

	malformedRatingExport string = goodreadsHeader +
		`1,Dune,Frank Herbert,"Herbert, Frank",,,,five,4.27,Ace Books,Paperback,604,2005,1965,,2021/01/02,,,read,,,,1,0` + "\n"

	headerOnlyExport string = goodreadsHeader
)
