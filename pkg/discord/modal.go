package discord

import "github.com/bwmarrin/discordgo"

// ModalValues collects the text inputs of a modal submission by CustomID.
func ModalValues(data discordgo.ModalSubmitInteractionData) map[string]string {
	values := make(map[string]string, len(data.Components))
	for _, c := range data.Components {
		row, ok := c.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, rc := range row.Components {
			if input, ok := rc.(*discordgo.TextInput); ok {
				values[input.CustomID] = input.Value
			}
		}
	}
	return values
}

// TextInputRow wraps one text input in its own action row, as modals require.
func TextInputRow(input discordgo.TextInput) discordgo.ActionsRow {
	return discordgo.ActionsRow{Components: []discordgo.MessageComponent{input}}
}
