package extract

// ParticipantPrompt instructs a multimodal model to return one attendee name
// per line from a meeting participant-panel screenshot, with role annotations
// stripped and UI chrome ignored.
const ParticipantPrompt = `This image is a screenshot of a meeting participant panel.
Extract only the participant names.

Rules:
- Output one name per line
- Remove trailing annotations such as "(host)", "(me)", "(co-host)", "(ホスト)", "(自分)"
- Ignore UI buttons such as "Mute" or "Video"
- Ignore icons and emoji
- Skip any entry whose name cannot be read

Output format (names only, no commentary):
山田太郎
John Smith
...`
