package llm

import "strings"

// essayPlaceholder marks where the essay body is spliced into the
// annotation template.
const essayPlaceholder = "{essay_text}"

// annotationTemplate is the instruction block sent to every provider,
// identical for all of them so runs stay comparable across models. The
// run report embeds it verbatim, which is why it lives here as one
// constant rather than being assembled at call time. Backticks in the
// text rule out a raw string literal.
const annotationTemplate = "You are an expert in argument mining and discourse analysis. Your task is to annotate argumentative essays by identifying argument components and their relationships.\n" +
	"\n" +
	"## Annotation Schema\n" +
	"\n" +
	"### Entity Types:\n" +
	"1. **MajorClaim**: The main thesis or central claim of the essay. Usually appears in the introduction or conclusion.\n" +
	"2. **Claim**: A statement that supports or attacks the MajorClaim. Claims express the author's stance on sub-topics.\n" +
	"3. **Premise**: Evidence, reasoning, or examples that support or attack a Claim.\n" +
	"\n" +
	"### Attributes:\n" +
	"- **Stance**: For Claims only. Indicates whether the Claim supports (For) or opposes (Against) the MajorClaim.\n" +
	"\n" +
	"### Relations:\n" +
	"- **supports**: The source argument component provides support for the target.\n" +
	"- **attacks**: The source argument component opposes or contradicts the target.\n" +
	"\n" +
	"## Output Format (BRAT Standoff Format)\n" +
	"\n" +
	"Generate annotations in this exact format:\n" +
	"\n" +
	"1. **Entity annotations** (T lines):\n" +
	"   `T<id>\t<Type> <start_offset> <end_offset>\t<text>`\n" +
	"   - id: Sequential number starting from 1\n" +
	"   - Type: MajorClaim, Claim, or Premise\n" +
	"   - start_offset: Character position where the span starts (0-indexed)\n" +
	"   - end_offset: Character position where the span ends\n" +
	"   - text: The exact text span from the essay\n" +
	"\n" +
	"2. **Attribute annotations** (A lines):\n" +
	"   `A<id>\tStance T<entity_id> <For|Against>`\n" +
	"   - Only for Claim entities\n" +
	"   - For: The claim supports the MajorClaim\n" +
	"   - Against: The claim opposes the MajorClaim\n" +
	"\n" +
	"3. **Relation annotations** (R lines):\n" +
	"   `R<id>\t<supports|attacks> Arg1:T<source_id> Arg2:T<target_id>`\n" +
	"   - source_id: The entity providing support/attack\n" +
	"   - target_id: The entity being supported/attacked\n" +
	"\n" +
	"## Important Rules:\n" +
	"1. Character offsets must be EXACT - count characters precisely from the start of the text (0-indexed).\n" +
	"2. The text span must match EXACTLY what appears at those offsets.\n" +
	"3. Every Claim must have a Stance attribute.\n" +
	"4. Relations typically flow: Premise -> Claim -> MajorClaim\n" +
	"5. Claims can also support/attack other Claims.\n" +
	"6. Premises can support/attack Claims or other Premises.\n" +
	"7. Do NOT include any explanation or commentary - output ONLY the annotation lines.\n" +
	"\n" +
	"## Essay to Annotate:\n" +
	"\n" +
	essayPlaceholder + "\n" +
	"\n" +
	"## Your Annotation (output ONLY the annotation lines, nothing else):\n"

// Template returns the verbatim annotation prompt template.
func Template() string {
	return annotationTemplate
}

// BuildPrompt renders the template for one essay.
func BuildPrompt(essayText string) string {
	return strings.Replace(annotationTemplate, essayPlaceholder, essayText, 1)
}
