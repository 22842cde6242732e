// Package validator provides the issue and result types vmsg uses to report
// validation outcomes.
//
// The same types carry two kinds of findings:
//
//   - Resolved failure messages from a run, built with [FromMessages]. Each
//     message becomes an error [Issue] with its field key and reason code.
//   - Problems found while checking catalogs and failure input, added with
//     [Result.AddError], [Result.AddWarning] and [Result.AddInfo].
//
// A [Reporter] writes a [Result] as coloured text or JSON:
//
//	result := validator.FromMessages(resolver.Messages())
//	if err := validator.NewReporter(os.Stdout, validator.FormatText).Report(result); err != nil {
//		return err
//	}
package validator
