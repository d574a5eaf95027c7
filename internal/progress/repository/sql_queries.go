package repository

const (
	markChapterReadQuery = `INSERT INTO reading_progress (user_id, book_number, chapter, read_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (user_id, book_number, chapter)
		DO UPDATE SET read_at = now()
		RETURNING *`

	getBookProgressQuery = `SELECT b.book_number,
			b.name,
			b.chapters AS total_chapters,
			COUNT(rp.chapter) AS chapters_read
		FROM bible_books b
		LEFT JOIN reading_progress rp
			ON rp.book_number = b.book_number AND rp.user_id = $1
		GROUP BY b.book_number, b.name, b.chapters
		ORDER BY b.book_number`

	getReadDaysQuery = `SELECT DISTINCT date_trunc('day', read_at) AS read_day
		FROM reading_progress
		WHERE user_id = $1
		ORDER BY read_day DESC`

	saveVerseQuery = `INSERT INTO saved_verses (user_id, book_number, chapter, verse, text, highlight_color, saved_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		ON CONFLICT (user_id, book_number, chapter, verse)
		DO UPDATE SET highlight_color = EXCLUDED.highlight_color, saved_at = now()
		RETURNING *`

	unsaveVerseQuery = `DELETE FROM saved_verses WHERE saved_id = $1 AND user_id = $2`

	listSavedVersesQuery = `SELECT saved_id, user_id, book_number, chapter, verse, text, highlight_color, saved_at
		FROM saved_verses
		WHERE user_id = $1
		ORDER BY saved_at DESC`
)
