// Package sanitize rewrites raw LLM output that is meant to contain a single
// JSON object into text that is more likely to parse.
//
// The work is split into small pure steps, each a func(string) string with
// its own tests, grouped into two passes:
//
//   - Conservative (pass 1): [ExtractObject], [StripControl],
//     [CollapseWhitespace], [NormalizeQuotes], [Unescape]. These steps do not
//     change the meaning of text that is already valid JSON.
//   - Aggressive (pass 2): [QuoteKeys], [QuoteBareValues],
//     [InsertMissingCommas], [RemoveTrailingCommas], [BalanceBrackets] and,
//     when enabled, [LibraryRepair]. These guess at the intended structure
//     and are only used after pass 1 failed to produce a valid document.
//
// Every step is a single left-to-right scan that tracks string literals, so
// the cost of a pass is linear in the input length. No step uses regular
// expressions.
package sanitize
