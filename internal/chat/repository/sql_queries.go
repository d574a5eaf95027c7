package repository

const (
	createChatQuery = `INSERT INTO ai_chats (user_id, title, verse_reference, messages, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now(), now())
		RETURNING *`

	getChatByIDQuery = `SELECT chat_id, user_id, title, verse_reference, messages, created_at, updated_at
		FROM ai_chats
		WHERE chat_id = $1 AND user_id = $2`

	getTotalChatsQuery = `SELECT COUNT(chat_id) FROM ai_chats WHERE user_id = $1`

	listChatsQuery = `SELECT chat_id, user_id, title, verse_reference, messages, created_at, updated_at
		FROM ai_chats
		WHERE user_id = $1
		ORDER BY updated_at DESC
		OFFSET $2 LIMIT $3`

	updateChatMessagesQuery = `UPDATE ai_chats
		SET messages = $1, updated_at = now()
		WHERE chat_id = $2 AND user_id = $3
		RETURNING *`

	deleteChatQuery = `DELETE FROM ai_chats WHERE chat_id = $1 AND user_id = $2`
)
