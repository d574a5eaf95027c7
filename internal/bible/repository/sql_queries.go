package repository

const (
	getBooksQuery = `SELECT book_id, book_number, name, abbrev, chapters, testament FROM bible_books ORDER BY book_number`

	getBookByNumberQuery = `SELECT book_id, book_number, name, abbrev, chapters, testament FROM bible_books WHERE book_number = $1`

	getChapterVersesQuery = `SELECT verse_id, book_number, chapter, verse, text FROM bible_verses
					WHERE book_number = $1 AND chapter = $2 ORDER BY verse`

	getTotalVersesByTextQuery = `SELECT COUNT(verse_id) FROM bible_verses WHERE text ILIKE '%' || $1 || '%'`

	searchVersesQuery = `SELECT verse_id, book_number, chapter, verse, text FROM bible_verses
					WHERE text ILIKE '%' || $1 || '%' ORDER BY book_number, chapter, verse OFFSET $2 LIMIT $3`

	upsertVerseQuery = `INSERT INTO bible_verses (book_number, chapter, verse, text)
					VALUES (:book_number, :chapter, :verse, :text)
					ON CONFLICT (book_number, chapter, verse) DO UPDATE SET text = EXCLUDED.text`
)
