package repository

const (
	getVideoByChapterQuery = `SELECT video_id, book_number, chapter, status, script, veo_task_id, video_url, storage_key, error_message, duration_seconds, created_at, updated_at
					FROM chapter_videos WHERE book_number = $1 AND chapter = $2`

	// Insert-or-restart: a failed row is replaced in place, any other conflict
	// returns no row so the caller can detect the race and re-read. A restart
	// mints a fresh video_id so markers still keyed on the previous attempt's
	// identity cannot terminalize the new one.
	createGeneratingQuery = `INSERT INTO chapter_videos (book_number, chapter, status, script, veo_task_id, duration_seconds, created_at, updated_at)
					VALUES ($1, $2, 'generating', $3, $4, $5, now(), now())
					ON CONFLICT (book_number, chapter) DO UPDATE
						SET video_id = uuid_generate_v4(),
						    status = 'generating',
						    script = EXCLUDED.script,
						    veo_task_id = EXCLUDED.veo_task_id,
						    video_url = NULL,
						    storage_key = NULL,
						    error_message = NULL,
						    duration_seconds = EXCLUDED.duration_seconds,
						    updated_at = now()
						WHERE chapter_videos.status = 'failed'
					RETURNING *`

	createFailedQuery = `INSERT INTO chapter_videos (book_number, chapter, status, script, error_message, duration_seconds, created_at, updated_at)
					VALUES ($1, $2, 'failed', $3, $4, $5, now(), now())
					ON CONFLICT (book_number, chapter) DO UPDATE
						SET video_id = uuid_generate_v4(),
						    status = 'failed',
						    script = EXCLUDED.script,
						    veo_task_id = NULL,
						    video_url = NULL,
						    storage_key = NULL,
						    error_message = EXCLUDED.error_message,
						    updated_at = now()
						WHERE chapter_videos.status = 'failed'
					RETURNING *`

	markCompletedQuery = `UPDATE chapter_videos
					SET status = 'completed',
					    video_url = $2,
					    storage_key = NULLIF($3, ''),
					    duration_seconds = $4,
					    error_message = NULL,
					    updated_at = now()
					WHERE video_id = $1 AND status = 'generating'
					RETURNING *`

	markFailedQuery = `UPDATE chapter_videos
					SET status = 'failed',
					    error_message = $2,
					    updated_at = now()
					WHERE video_id = $1 AND status = 'generating'
					RETURNING *`

	getStaleGeneratingQuery = `SELECT video_id, book_number, chapter, status, script, veo_task_id, video_url, storage_key, error_message, duration_seconds, created_at, updated_at
					FROM chapter_videos
					WHERE status = 'generating' AND updated_at < $1
					ORDER BY updated_at`
)
