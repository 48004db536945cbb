package service

const (
	defaultTimeComplexity  = "O(1)"
	defaultSpaceComplexity = "O(1)"
	defaultAnalysis        = "Basic complexity analysis"
)

const (
	systemPrompt = `You are an expert programming educator who explains code in a clear, beginner-friendly way. Always respond with valid JSON.`

	userPromptTemplate = "Analyze the following code and provide a comprehensive explanation with algorithmic analysis in JSON format.\n\n" +
		"Code:\n```%s\n%s\n```\n\n" + responseShape

	responseShape = `Please respond with a JSON object containing:
- explanation: A clear overview of what the code does
- detectedLanguage: The actual programming language detected (be specific, e.g., "Python", "JavaScript", "Java")
- keyPoints: Array of 3-5 key points about the code
- stepByStep: Array of objects with step, description, and color fields for step-by-step breakdown
- concepts: Array of objects with name and description for key programming concepts used
- performanceNotes: Performance analysis and optimization suggestions
- optimizationSuggestions: Array of objects with issue, solution, and example fields for specific improvements
- complexityAnalysis: Object with timeComplexity, spaceComplexity, and analysis fields
- blackboxComponents: Array of objects with name, type, description, isBlackbox (boolean), riskLevel ("low"/"medium"/"high"), and recommendations array for enterprise security analysis

Focus on:
1. Educational explanations for beginners
2. Algorithmic complexity analysis (Big O notation)
3. Specific optimization recommendations with examples
4. Data structure efficiency suggestions
5. Common performance pitfalls and solutions
6. Enterprise security analysis for banking applications

For optimization suggestions, provide specific examples like:
- "This loop has O(n²) complexity. Consider using a HashMap to reduce it to O(n)"
- "Linear search is inefficient. Use binary search for sorted arrays"
- "Recursive approach may cause stack overflow. Consider iterative solution"
- "Multiple array iterations can be combined into a single loop"

For blackbox component analysis, identify:
- External libraries, APIs, or third-party services
- Components with unknown internal implementation
- Risk assessment for enterprise banking environments
- Security recommendations for each component
- Whether components are transparent (code visible) or blackbox (opaque)

Example blackbox components:
- External APIs (high risk - unknown data handling)
- Third-party libraries (medium risk - depends on reputation)
- Database drivers (low risk - well-established)
- Cloud services (medium-high risk - external dependency)

Be specific about data structure choices and algorithmic improvements.`
)
