// Stdguard turns an organization's coding guidelines into enforceable,
// reviewable rules.
//
// The extract command reads guideline documents (PDF, DOCX, PPTX, text),
// pulls concrete coding rules out of them with an LLM, and stores them in a
// versioned JSON rule store. The serve command runs the review backend that
// scores submitted code against those rules.
//
// Usage:
//
//	stdguard extract                  # extract rules from the guide directory
//	stdguard extract style.pdf        # extract rules from specific documents
//	stdguard rules                    # list stored rules by category
//	stdguard push -m "update rules"   # commit and push the rule store
//	stdguard serve                    # run the review backend
package main
