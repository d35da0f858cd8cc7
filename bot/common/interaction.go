package common

import (
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"
)

// InteractionIDs extracts the invoking user and guild as int64 IDs.
// Commands are guild-only, so a missing member or guild is an error.
func InteractionIDs(i *discordgo.InteractionCreate) (userID, guildID int64, err error) {
	if i.Member == nil || i.Member.User == nil {
		return 0, 0, fmt.Errorf("interaction has no guild member")
	}
	userID, err = strconv.ParseInt(i.Member.User.ID, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad user id %q: %w", i.Member.User.ID, err)
	}
	guildID, err = strconv.ParseInt(i.GuildID, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad guild id %q: %w", i.GuildID, err)
	}
	return userID, guildID, nil
}

// ParseUserID converts a Discord snowflake string to int64
func ParseUserID(id string) (int64, error) {
	return strconv.ParseInt(id, 10, 64)
}
