package message

import (
	"fmt"
	"strings"

	coreport "github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/port/core"
	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/port/usecase"
)

const (
	welcomeText  = "Вітаю! 🤖\n\nНапиши 'Привіт' і отримуй бали.\nПеревір баланс командою /score.\n\nУдачі! 🍀"
	scoreFormat  = "👤 %s\n💰 У вас %d балів."
	creditFormat = "🎉 Ви отримали %d бал(ів)!\n💰 Загалом у вас %d балів."
	rewardPrefix = "\n\n🏅 "
	rewardSep    = "\n🏅 "
	apologyText  = "😔 Вибачте, щось пішло не так. Спробуйте ще раз трохи пізніше."
)

var fillerReplies = []string{
	"Цікаво! Напишіть 'Привіт', щоб отримати бали! 😊",
	"Я розумію! Але бали дають тільки за 'Привіт' 🤖",
	"Дякую за повідомлення! Спробуйте написати 'Привіт' 👋",
}

// Composer renders reply texts. Filler replies are picked by the chooser.
type Composer struct {
	chooser coreport.Chooser
}

func NewComposer(chooser coreport.Chooser) usecase.ReplyComposer {
	return &Composer{chooser: chooser}
}

// Compose renders the reply to a text message
func (c *Composer) Compose(matchCount int, total int64, rewards []string) string {
	if matchCount <= 0 {
		return c.filler()
	}

	var b strings.Builder
	fmt.Fprintf(&b, creditFormat, matchCount, total)
	if len(rewards) > 0 {
		b.WriteString(rewardPrefix)
		b.WriteString(strings.Join(rewards, rewardSep))
	}
	return b.String()
}

func (c *Composer) Welcome() string {
	return welcomeText
}

func (c *Composer) Score(displayName string, points int64) string {
	return fmt.Sprintf(scoreFormat, displayName, points)
}

func (c *Composer) Apology() string {
	return apologyText
}

func (c *Composer) filler() string {
	i := c.chooser.Intn(len(fillerReplies))
	if i < 0 || i >= len(fillerReplies) {
		i = 0
	}
	return fillerReplies[i]
}
