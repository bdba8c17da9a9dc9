package filings

import "fmt"

const promptTemplate = `Based on the current date, find the two most recent quarterly 13-F filings for %s (CIK: %s) on the SEC EDGAR database (site:sec.gov).

For each of the two filings, please extract the following information:
1. The filing date and the quarter it represents (e.g., "Q3 2025").
2. The total market value of all holdings reported on the summary page.
3. A list of all holdings from the information table. For each holding, extract:
   - NAME OF ISSUER
   - CUSIP
   - VALUE (x$1000)
   - SHRS OR PRN AMT
   - Ticker Symbol (if you can find it based on the company name)

After extracting the data, return a single JSON object with the following structure. Do not include any text, explanations, or markdown formatting outside of the JSON object.

{
  "quarter1": {
    "label": "Q_ 20YY",
    "filingDate": "YYYY-MM-DD",
    "totalValue": 123456789,
    "holdings": [
      {
        "name": "APPLE INC",
        "cusip": "037833100",
        "ticker": "AAPL",
        "value": 50000000,
        "shares": 150000000
      }
    ]
  },
  "quarter2": {
    "label": "Q_ 20YY",
    "filingDate": "YYYY-MM-DD",
    "totalValue": 113456789,
    "holdings": [
      {
        "name": "APPLE INC",
        "cusip": "037833100",
        "ticker": "AAPL",
        "value": 48000000,
        "shares": 145000000
      }
    ]
  }
}

Ensure 'quarter1' is the most recent quarter and 'quarter2' is the one before it. Remove any dollar signs or commas from numerical values. For the 'shares' field, use the 'sshPrnamt' value. For the 'value' field, use the 'value' value (which is already in thousands).`

// Prompt returns the request sent to the model for the filings of 'fund'
// registered under 'cik'.
func Prompt(fund, cik string) string {
	return fmt.Sprintf(promptTemplate, fund, cik)
}
