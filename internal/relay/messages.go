package relay

// User-facing reply texts
const (
	msgStart = "👋 Привет! Я бот для анонимных сообщений.\n\n" +
		"🔗 Вот твоя персональная ссылка для приема анонимных сообщений:\n%s\n\n" +
		"📣 В данный момент сообщения будут приходить в личку. " +
		"Используй кнопку ниже, чтобы настроить отправку в канал."

	msgConfigureChannel = "Пожалуйста, перешли мне любое сообщение из канала, " +
		"в который ты хочешь получать анонимные сообщения.\n\n" +
		"Убедись, что я добавлен в этот канал как администратор с правом публикации сообщений.\n\n" +
		"Чтобы отменить настройку, отправь /cancel."

	msgChannelSet = "✅ Готово! Теперь анонимные сообщения будут отправляться в канал '%s'.\n\n" +
		"Для возврата к получению сообщений в личку используй команду /reset_channel"

	msgNotAChannel = "❌ Это не похоже на сообщение из канала. " +
		"Пожалуйста, перешли сообщение из нужного канала или отправь /cancel для отмены."

	msgChannelReset = "✅ Настройки сброшены. Анонимные сообщения снова будут приходить в личку."

	msgNoChannelConfigured = "ℹ️ У вас не настроена пересылка в канал."

	msgCancelled = "Действие отменено."

	msgNothingToCancel = "Нет активных действий для отмены."

	msgAwaitingMessage = "✍️ Напиши свое анонимное сообщение или отправь фото (с подписью или без). " +
		"Оно будет отправлено получателю, но он не узнает, кто его отправил.\n\n" +
		"Для отмены отправь /cancel."

	msgBadDeepLink = "❌ Некорректная ссылка для анонимного сообщения."

	msgNeedContent = "Пожалуйста, отправь текстовое сообщение или фото с подписью или без."

	msgSent = "✅ Анонимное сообщение успешно отправлено!"

	msgDeliveryFailed = "❌ Не удалось отправить сообщение. " +
		"Возможно, получатель заблокировал бота или произошла ошибка при отправке в канал."
)
