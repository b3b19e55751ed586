package i18n

import "github.com/yourusername/dram-rate-bot/internal/domain/entity"

var globalMessages = map[string]string{
	"choose_language": "Ընտրեք լեզուն։\n" +
		"Choose your preferred language.\n" +
		"Выберите язык.",
	"lang_hy": "🇦🇲 Հայերեն",
	"lang_en": "🇺🇸 English",
	"lang_ru": "🇷🇺 Русский",
	"n_amd":   "🇦🇲 {n}֏",
	"n_usd":   "🇺🇸 {n}$",
	"n_rur":   "🇷🇺 {n}₽",
	"choose_bank": "Ընտրեք Ձեր բանկը։\n" +
		"Choose your preferred bank.\n" +
		"Выберите Ваш предпочитаемый банк.",
	"error": "🤒🤒🤒🤒🤒",
}

var localizedMessages = map[entity.Language]map[string]string{
	entity.LanguageHy: {
		"choose_bank": "Ընտրեք Ձեր բանկը։",
		"prefs_saved": "Շատ լավ։ Կարգավորումները պահպանված են։ 👍\n\n" +
			"🇦🇲 Լեզու՝ հայերեն\n" +
			"🏦 Բանկ՝ {bank}",
		"welcome": "Ողջույն։ 👋",
		"help": "Ես կարող եմ օգնել Ձեզ իմանալ հայկական դրամի փոխարժեքները։\n\n" +
			"Համապատասխան ինֆորմացիա ստանալու համար կարող եք օգտվել մենյուից և հետևյալ հրամաններից՝\n\n" +
			"- Բոլորը $(դոլար) - տեսնել բոլոր բանկերի կողմից սահմանված դրամի փոխարժեքները ԱՄՆ դոլարի նկատմամբ\n" +
			"- Բոլորը ₽(ռուբլի) - տեսնել բոլոր բանկերի կողմից սահմանված դրամի փոխարժեքները ՌԴ ռուբլու նկատմամբ\n" +
			"- Բանկեր - տեսնել բոլոր բանկերը\n" +
			"- Իմ բանկը - տեսնել իմ բանկի կողմից սահմանված դրամի փոխարժեքները\n" +
			"- Կարգավորումներ - փոխել լեզուն և բանկը\n" +
			"- Օգնություն - տեսնել հասանելի հրամանները\n" +
			"- Կապ - տեսնել կոնտակտային տվյալները\n\n" +
			"Հաշվիչից օգտվելու համար պարզապես ուղարկեք անհրաժեշտ գումարը, այն դրամի փոխարկելու համար (օր․ 200), " +
			"իսկ դրամն ԱՄՆ դոլարի և ռուսական ռուբլու փոխարկելու համար, " +
			"գումարի հետ ուղարկեք «դրամ» բառը (օր․ 48000 դրամ)։",
		"contact": "Բոլոր տվյալները վերցվում են rate.am-ից։ Առաջարկների կամ թերություն գտնելու դեպքում " +
			"կարող եք գրել հետևյալ հասցեին՝ aramayis.amiraghyan@yandex.com",
		"choose_bank_for_rates": "Ընտրեք բանկը փոխարժեքները իմանալու համար",
		"non_cash":              "Անկանխիկ",
		"cash":                  "Կանխիկ",
		"buy":                   "Առք",
		"sell":                  "Վաճ.",
		"bank_name":             "Բանկ",
		"err_n_big": "🤑🤑🤑 Լու՞րջ:\n\n" +
			"Գումարը պետք է պարունակի ամենաշատը 9 նիշ, որ ես կարողանամ փոխակերպել այն։ 😔",
		"err_n_small": "Գումարը շատ փոքր է, ես էլ այդքան լավ չեմ միկրոսկոպիկ հաշվարկներից։ 🤨",
		"err_n_0":     "Գուցե զարմանաք, բայց 0-ն բոլոր արժույթներով էլ 0 է։ 🙃",
		"all_usd":     "🇺🇸 Բոլորը $",
		"all_rur":     "🇷🇺 Բոլորը ₽",
		"banks":       "🏛 Բանկեր",
		"my_bank":     "🏦 Իմ բանկը",
		"preferences": "⚙ Կարգավորումներ",
	},
	entity.LanguageEn: {
		"choose_bank": "Choose your preferred bank.",
		"prefs_saved": "Great, settings have been saved! 👍\n\n" +
			"🇺🇸 Language: english\n" +
			"🏦 Bank: {bank}",
		"welcome": "Hello and welcome!! 👋",
		"help": "I can help you find out armenian dram exchange rates.\n\n" +
			"You can use the menu and following commands to get relevant information:\n\n" +
			"- All $(dollar) - get AMD exchange rates against USD set by all banks\n" +
			"- All ₽(ruble) - get AMD exchange rates against RUR set by all banks\n" +
			"- Banks - get all banks\n" +
			"- My bank - get AMD exchange rates set by my bank\n" +
			"- Preferences - change the language and bank\n" +
			"- Help - get available commands\n" +
			"- Contact - get contact details\n\n" +
			"To use currency converter just send the necessary amount to convert it to AMD (e.g. 200), " +
			"and to convert AMD to USD or RUR add the word 'dram' to the amount (e.g. 48000 dram).",
		"contact": "All data is taken from rate.am. In case if you have any suggestions or find a bug, " +
			"please send an email to this address: aramayis.amiraghyan@yandex.com",
		"choose_bank_for_rates": "Choose a bank to get the exchange rates",
		"non_cash":              "Non-cash",
		"cash":                  "Cash",
		"buy":                   "Buy",
		"sell":                  "Sell",
		"bank_name":             "Bank",
		"err_n_big": "🤑🤑🤑 Are you serious?\n\n" +
			"The amount should have at most 9 digits, so that I can convert. 😔",
		"err_n_small": "The amount is very small and I am not good at microscopic calculations. 🤨",
		"err_n_0":     "Will you be surprised if I tell you that 0 is 0 everywhere? 🙃",
		"all_usd":     "🇺🇸 All $",
		"all_rur":     "🇷🇺 All ₽",
		"banks":       "🏛 Banks",
		"my_bank":     "🏦 My bank",
		"preferences": "⚙ Preferences",
	},
	entity.LanguageRu: {
		"choose_bank": "Выберите Ваш предпочитаемый банк.",
		"prefs_saved": "Отлично, настройки сохранены! 👍\n\n" +
			"🇷🇺 Язык: русский\n" +
			"🏦 Банк: {bank}",
		"welcome": "Привет! 👋",
		"help": "Я могу помочь Вам узнать курсы армянского драма.\n\n" +
			"Для получения соответствующей информации, можете использовать меню и следующие команды:\n\n" +
			"- Все $(доллар) - узнать курс драма к доллару США\n" +
			"- Все ₽(рубль) - узнать курс драма к рублю РФ\n" +
			"- Банки - увидеть все банки\n" +
			"- Мой банк - узнать курс драма установленный моим банком\n" +
			"- Настройки - изменить язык и банк\n" +
			"- Помощь - увидеть доступные команды\n" +
			"- Контакты - увидеть контактную информацию\n\n" +
			"Чтобы воспользоваться конвертером валют, просто отправьте необходимую сумму (например: 200) " +
			"и она будет конвертирована в драмы. Для конвертации драма в доллары США и рубли РФ, отправьте слово " +
			"«драм» вместе с суммой (например: 48000 драм).",
		"contact": "Все данные берутся из rate.am. Если у вас есть предложения или вы нашли ошибку, можете " +
			"отправить электронное письмо по адресу aramayis.amiraghyan@yandex.com",
		"choose_bank_for_rates": "Выберите банк, чтобы узнать курсы валют",
		"non_cash":              "Безналичный",
		"cash":                  "Наличный",
		"buy":                   "Куп.",
		"sell":                  "Прод.",
		"bank_name":             "Банк",
		"err_n_big": "🤑🤑🤑 Вы серьезно?\n\n" +
			"Я умею конвертировать максимум девятизначные суммы. 😔",
		"err_n_small": "Сумма очень маленькая, а я не очень дружу с микроскопическими вычислениями. 🤨",
		"err_n_0":     "0 он и в Африке 0. 🙃",
		"all_usd":     "🇺🇸 Все $",
		"all_rur":     "🇷🇺 Все ₽",
		"banks":       "🏛 Банки",
		"my_bank":     "🏦 Мой банк",
		"preferences": "⚙ Настройки",
	},
}
