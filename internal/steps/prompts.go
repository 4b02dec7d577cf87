package steps

import "fmt"

func summarizePrompt(input string) string {
	return fmt.Sprintf(`Please provide a clear and concise summary of the following text. Focus on the main points and key information.

Text to summarize:
%s

Summary:`, input)
}

func extractKeypointsPrompt(input string) string {
	return fmt.Sprintf(`Extract the main key points from the following text. Present them as a clear bullet-point list.

Text:
%s

Key Points:`, input)
}

func tagCategoryPrompt(input string) string {
	return fmt.Sprintf(`Analyze the following text and assign 2-5 relevant category tags. Return only the tags, comma-separated.

Text:
%s

Tags:`, input)
}

func sentimentPrompt(input string) string {
	return fmt.Sprintf(`Analyze the sentiment and emotional tone of the following text. Provide a brief assessment including the overall sentiment (positive/negative/neutral) and any notable emotional undertones.

Text:
%s

Sentiment Analysis:`, input)
}

func generateTitlePrompt(input string) string {
	return fmt.Sprintf(`Generate a clear, descriptive, and engaging title for the following text. The title should capture the main topic or theme.

Text:
%s

Title:`, input)
}
