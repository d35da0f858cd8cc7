package economy

import (
	"context"
	"fmt"
	"hash/fnv"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"megabot/bot/common"
)

// Flavor lines for /work. The line is picked from the earned amount so the
// engine stays in charge of all randomness.
var workJobs = []string{
	"You walked the mayor's dog",
	"You fixed a stranger's printer",
	"You flipped burgers at the night shift",
	"You streamed for three viewers",
	"You mowed an oversized lawn",
	"You debugged spaghetti code",
	"You delivered suspicious packages",
	"You busked in the town square",
}

func (f *Feature) handleDaily(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	userID, guildID, err := common.InteractionIDs(i)
	if err != nil {
		log.Errorf("Error parsing interaction IDs: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	result, err := f.rewardsService.Daily(ctx, userID, guildID)
	if err != nil {
		common.RespondWithError(s, i, common.ErrorMessage(err))
		return
	}

	message := fmt.Sprintf("📅 You claimed your daily **%s coins**!", common.FormatCoins(result.Reward))
	if result.Multiplier > 1.0 {
		message += fmt.Sprintf(" (×%g boost applied)", result.Multiplier)
	}
	message += fmt.Sprintf(" New balance: **%s coins**", common.FormatCoins(result.NewBalance))

	common.RespondWithContent(s, i, message)
}

func (f *Feature) handleWork(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	userID, guildID, err := common.InteractionIDs(i)
	if err != nil {
		log.Errorf("Error parsing interaction IDs: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	result, err := f.rewardsService.Work(ctx, userID, guildID)
	if err != nil {
		common.RespondWithError(s, i, common.ErrorMessage(err))
		return
	}

	message := fmt.Sprintf("💼 %s and earned **%s coins**!", pickJob(userID, result.Earned), common.FormatCoins(result.Earned))
	if result.Multiplier > 1.0 {
		message += fmt.Sprintf(" (×%g boost applied)", result.Multiplier)
	}
	message += fmt.Sprintf(" New balance: **%s coins**", common.FormatCoins(result.NewBalance))

	common.RespondWithContent(s, i, message)
}

func pickJob(userID, earned int64) string {
	h := fnv.New32a()
	fmt.Fprintf(h, "%d:%d", userID, earned)
	return workJobs[int(h.Sum32())%len(workJobs)]
}
